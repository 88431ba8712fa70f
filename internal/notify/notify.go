package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// File de notifications du back-office : ce que le dashboard affiche en
// toasts persistants. Chaque entrée vit jusqu'à son dismiss explicite,
// la liste est bornée aux 100 dernières.
const (
	queueKey   = "backoffice:notifications"
	maxEntries = 100
)

const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelError   = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Service est injectable : les handlers reçoivent l'instance construite au
// boot, les tests peuvent lui donner un client miniredis.
type Service struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Service {
	return &Service{rdb: rdb}
}

func (s *Service) Push(ctx context.Context, level, message string) (Notification, error) {
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(n)
	if err != nil {
		return n, err
	}

	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, queueKey, data)
	pipe.LTrim(ctx, queueKey, 0, maxEntries-1)
	_, err = pipe.Exec(ctx)
	return n, err
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	raws, err := s.rdb.LRange(ctx, queueKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, len(raws))
	for _, raw := range raws {
		var n Notification
		if json.Unmarshal([]byte(raw), &n) == nil {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

// Dismiss retire une notification par son id. Inconnue → no-op.
func (s *Service) Dismiss(ctx context.Context, id string) error {
	raws, err := s.rdb.LRange(ctx, queueKey, 0, -1).Result()
	if err != nil {
		return err
	}

	for _, raw := range raws {
		var n Notification
		if json.Unmarshal([]byte(raw), &n) == nil && n.ID == id {
			return s.rdb.LRem(ctx, queueKey, 1, raw).Err()
		}
	}
	return nil
}
