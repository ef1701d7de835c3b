package match

import (
	"strings"

	"conform/internal/diag"
)

// DefaultSchema mirrors the house project layout.
func DefaultSchema() *Schema {
	s := NewSchema()
	// Ошибки здесь невозможны: префиксы литеральные.
	_ = s.Allow("entities/*", NewKindSet(ArtifactScript, ArtifactScene))
	_ = s.Allow("levels", NewKindSet(ArtifactScene, ArtifactResource))
	_ = s.Allow("menus/ui", NewKindSet(ArtifactScene, ArtifactScript))
	_ = s.Allow("menus/ui/theme_default/assets", NewKindSet(ArtifactTexture, ArtifactFont))
	_ = s.Allow("assets/textures", NewKindSet(ArtifactTexture))
	_ = s.Allow("assets/fonts", NewKindSet(ArtifactFont))
	_ = s.Allow("autoload", NewKindSet(ArtifactScript))
	_ = s.Allow("resources", NewKindSet(ArtifactResource))
	return s
}

// Path checks that an artifact of the declared kind may live at the given
// path. The last segment is the file name; the walk covers the directory
// segments only. Spans are byte offsets into the "/"-joined path.
func Path(segments []string, kind ArtifactKind, schema *Schema) []Finding {
	joined := strings.Join(segments, "/")
	if len(segments) < 2 {
		// Файл в корне проекта: корневого сегмента нет вовсе.
		return []Finding{{
			Code:     CodePathUnknownRoot,
			Value:    joined,
			Expected: "a known top-level directory",
			Span:     diag.WholeSpan(joined),
		}}
	}
	dirs := segments[:len(segments)-1]

	allowed, ok := schema.Allowed(dirs)
	if !ok {
		return []Finding{{
			Code:     CodePathUnknownRoot,
			Value:    dirs[0],
			Expected: "a known top-level directory",
			Span:     diag.SpanOf(joined, 0, len(dirs[0])),
		}}
	}
	if !allowed.Has(kind) {
		dirEnd := len(joined) - len(segments[len(segments)-1]) - 1
		return []Finding{{
			Code:     CodePathKindNotAllowed,
			Value:    kind.String(),
			Expected: allowed.String(),
			Span:     diag.SpanOf(joined, 0, dirEnd),
		}}
	}
	return nil
}
