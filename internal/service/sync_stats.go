package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

// syncStats summarises one sync call for the logs.
type syncStats struct {
	syncType models.SyncType
	spheres  int
	statuses map[models.ItemStatus]int
	started  time.Time
}

func newSyncStats(syncType models.SyncType) *syncStats {
	return &syncStats{
		syncType: syncType,
		statuses: make(map[models.ItemStatus]int),
		started:  time.Now(),
	}
}

// collect counts the statuses of every node of reply.
func (st *syncStats) collect(reply models.SyncReply) {
	st.spheres = len(reply.Spheres)
	if reply.User != nil {
		st.statuses[reply.User.Status]++
	}
	for _, node := range reply.Spheres {
		st.walk(node)
	}
}

func (st *syncStats) walk(node *models.ReplyItem) {
	if node == nil {
		return
	}
	if status := node.Status(); status != "" {
		st.statuses[status]++
	}
	for _, items := range node.Children {
		for _, child := range items {
			st.walk(child)
		}
	}
}

func (st *syncStats) log(log *logger.Logger, userID string) {
	event := log.Info().
		Str("sync_type", string(st.syncType)).
		Str("user_id", userID).
		Int("spheres", st.spheres).
		Dur("duration", time.Since(st.started))
	for status, n := range st.statuses {
		event = event.Int(strings.ToLower(string(status)), n)
	}
	event.Msg("sync finished")
}
