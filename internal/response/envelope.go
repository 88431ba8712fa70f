package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Le dashboard branche toutes ses réponses sur type === "OK" : chaque
// endpoint renvoie cette enveloppe, succès comme échec.
const (
	TypeOK    = "OK"
	TypeError = "ERROR"
)

type Pagination struct {
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

type Envelope struct {
	Type       string      `json:"type"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	// Erreurs de validation champ par champ (uniquement sur type ERROR)
	Fields map[string]string `json:"fields,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Type: TypeOK, Data: data}
}

func OKPage(data interface{}, p Pagination) Envelope {
	return Envelope{Type: TypeOK, Data: data, Pagination: &p}
}

func Error(message string) Envelope {
	return Envelope{Type: TypeError, Message: message}
}

func ValidationError(message string, fields map[string]string) Envelope {
	return Envelope{Type: TypeError, Message: message, Fields: fields}
}

// --- Writers gin ---

func WriteOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, OK(data))
}

func WriteOKPage(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, OKPage(data, p))
}

func WriteBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Error(message))
}

func WriteValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError("Données invalides", fields))
}

func WriteNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Error(message))
}

// WriteServerError masque le détail technique : il part dans les logs côté
// handler, jamais vers le client.
func WriteServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Error(message))
}
