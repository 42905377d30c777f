package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"careercraft/internal/domain/analysis"
)

type AnalysisCompletedEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	RecordID  uuid.UUID `json:"record_id"`
	Filename  string    `json:"filename"`
	Score     int       `json:"score"`
	Timestamp string    `json:"timestamp"`
}

// Notifier adapts the hub to the analyzer's notification hook.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

// AnalysisCompleted broadcasts a completed-analysis event. Clients
// filter on user_id; delivery is best-effort.
func (n *Notifier) AnalysisCompleted(userID uuid.UUID, rec analysis.Record) {
	if n == nil || n.hub == nil {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:      "analysis_completed",
		UserID:    userID,
		RecordID:  rec.ID,
		Filename:  rec.Filename,
		Score:     rec.Score,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
