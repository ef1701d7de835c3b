package match

// ArtifactKind classifies what a project file is, independent of where it
// sits in the tree.
type ArtifactKind uint8

const (
	ArtifactUnknown ArtifactKind = iota
	ArtifactScript
	ArtifactScene
	ArtifactResource
	ArtifactTexture
	ArtifactFont
)

func (k ArtifactKind) String() string {
	switch k {
	case ArtifactScript:
		return "script"
	case ArtifactScene:
		return "scene"
	case ArtifactResource:
		return "resource"
	case ArtifactTexture:
		return "texture"
	case ArtifactFont:
		return "font"
	}
	return "unknown"
}

// ParseArtifactKind maps a CLI/config string to an ArtifactKind.
func ParseArtifactKind(s string) (ArtifactKind, bool) {
	switch s {
	case "script":
		return ArtifactScript, true
	case "scene":
		return ArtifactScene, true
	case "resource":
		return ArtifactResource, true
	case "texture":
		return ArtifactTexture, true
	case "font":
		return ArtifactFont, true
	}
	return ArtifactUnknown, false
}

// KindSet is a bitmask of artifact kinds.
type KindSet uint8

func NewKindSet(kinds ...ArtifactKind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s KindSet) Has(k ArtifactKind) bool {
	return s&(1<<k) != 0
}

func (s KindSet) Empty() bool {
	return s == 0
}

func (s KindSet) String() string {
	if s.Empty() {
		return "none"
	}
	out := ""
	for k := ArtifactScript; k <= ArtifactFont; k++ {
		if s.Has(k) {
			if out != "" {
				out += "|"
			}
			out += k.String()
		}
	}
	return out
}
