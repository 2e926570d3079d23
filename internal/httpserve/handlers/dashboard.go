package handlers

import (
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/backup"
	"github.com/ortobahn/ortobahn/internal/db/queries"
	"github.com/ortobahn/ortobahn/internal/server"
)

const upcomingPostsLimit = 10

// RenderDashboard shows the client count, the next scheduled posts and the
// time of the most recent database backup.
func RenderDashboard(c echo.Context, a *server.App) error {
	clients, err := queries.ListClients(a.DB)
	if err != nil {
		return sendError(c, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	upcoming, err := queries.ListUpcomingPosts(a.DB, now, upcomingPostsLimit)
	if err != nil {
		return sendError(c, err)
	}

	return renderPage(c, a, http.StatusOK, "dashboard.gohtml", map[string]interface{}{
		"Title":         "Dashboard",
		"ClientCount":   len(clients),
		"UpcomingCount": len(upcoming),
		"UpcomingPosts": upcoming,
		"Uptime":        a.GetUptime(),
		"LastBackup":    lastBackupTime(a.Config.Backups.Dir),
	})
}

// lastBackupTime reads the newest backup's timestamp from its file name.
// Returns the empty string when no backup exists yet.
func lastBackupTime(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backup.BackupPrefix) || !strings.HasSuffix(name, backup.BackupExt) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	newest := names[len(names)-1]
	stamp := strings.TrimSuffix(strings.TrimPrefix(newest, backup.BackupPrefix), backup.BackupExt)
	when, err := time.Parse(backup.TimestampLayout, stamp)
	if err != nil {
		return ""
	}
	return when.UTC().Format("2006-01-02 15:04 UTC")
}
