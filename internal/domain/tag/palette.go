package tag

import "hash/fnv"

var palette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#84cc16", "#22c55e", "#14b8a6",
	"#06b6d4", "#3b82f6", "#6366f1", "#8b5cf6", "#d946ef", "#ec4899",
}

// ColorFor picks a stable palette color for a tag name.
func ColorFor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}
