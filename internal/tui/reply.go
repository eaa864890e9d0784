// Package tui renders sync replies and server info for the terminal.
//
// Output is styled with lipgloss; styling is dropped automatically when the
// output is not a terminal, so the rendered text is also safe to pipe.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/sphere-sync/models"
)

const maxIDWidth = 36

// RenderReply renders the item tree of reply followed by a per-status tally.
func RenderReply(syncType models.SyncType, reply models.SyncReply) string {
	var b strings.Builder

	for _, id := range sortedKeys(reply.Spheres) {
		writeNode(&b, 0, "sphere", id, reply.Spheres[id])
	}
	if reply.User != nil {
		writeLine(&b, 0, "user", "", reply.User.Status)
	}
	if reply.Firmwares != nil {
		writeLine(&b, 0, "firmwares", fmt.Sprintf("%d releases", len(reply.Firmwares.Data)), reply.Firmwares.Status)
	}
	if reply.Bootloaders != nil {
		writeLine(&b, 0, "bootloaders", fmt.Sprintf("%d releases", len(reply.Bootloaders.Data)), reply.Bootloaders.Status)
	}
	if reply.Keys != nil {
		writeLine(&b, 0, "keys", fmt.Sprintf("%d spheres", len(reply.Keys.Data)), reply.Keys.Status)
	}

	return renderPage(fmt.Sprintf("%s sync", syncType), b.String(), renderTally(Tally(reply)))
}

// Tally counts the statuses of every item in reply.
func Tally(reply models.SyncReply) map[models.ItemStatus]int {
	counts := make(map[models.ItemStatus]int)
	var walk func(node *models.ReplyItem)
	walk = func(node *models.ReplyItem) {
		if node == nil {
			return
		}
		if s := node.Status(); s != "" {
			counts[s]++
		}
		for _, items := range node.Children {
			for _, child := range items {
				walk(child)
			}
		}
	}

	for _, sphere := range reply.Spheres {
		walk(sphere)
	}
	if reply.User != nil {
		counts[reply.User.Status]++
	}
	for _, s := range []*models.CatalogReply{reply.Firmwares, reply.Bootloaders} {
		if s != nil {
			counts[s.Status]++
		}
	}
	if reply.Keys != nil {
		counts[reply.Keys.Status]++
	}

	return counts
}

// RenderVersion renders the version endpoint answer.
func RenderVersion(server string, info models.VersionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", padRight("protocol", 10), valueOrDash(info.ProtocolVersion))
	fmt.Fprintf(&b, "%s %s\n", padRight("build", 10), valueOrDash(info.BuildVersion))
	fmt.Fprintf(&b, "%s %s\n", padRight("date", 10), valueOrDash(info.BuildDate))
	fmt.Fprintf(&b, "%s %s\n", padRight("commit", 10), valueOrDash(info.BuildCommit))

	return renderPage(server, b.String(), "")
}

func writeNode(b *strings.Builder, depth int, label, id string, node *models.ReplyItem) {
	if node == nil {
		return
	}
	writeLine(b, depth, label, id, node.Status())
	if node.Data != nil && node.Data.Error != nil {
		fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth+1),
			errorStyle.Render(fmt.Sprintf("%d %s", node.Data.Error.Code, node.Data.Error.Msg)))
	}

	for _, category := range sortedKeys(node.Children) {
		items := node.Children[category]
		for _, childID := range sortedKeys(items) {
			writeNode(b, depth+1, category, childID, items[childID])
		}
	}
}

func writeLine(b *strings.Builder, depth int, label, id string, status models.ItemStatus) {
	name := label
	if id != "" {
		name += " " + fitText(id, maxIDWidth)
	}
	fmt.Fprintf(b, "%s%s %s\n", strings.Repeat("  ", depth), padRight(name, 48-2*depth), styleStatus(status))
}

func renderTally(counts map[models.ItemStatus]int) string {
	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)

	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, fmt.Sprintf("%s=%d", s, counts[models.ItemStatus(s)]))
	}
	return strings.Join(parts, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
