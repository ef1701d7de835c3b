package rules

// Category selects which requests a rule applies to.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryBranchName
	CategoryCommitMessage
	CategoryIdentifierCasing
	CategoryNodeSuffix
	CategoryDirectoryPlacement
)

func (c Category) String() string {
	switch c {
	case CategoryBranchName:
		return "branch-name"
	case CategoryCommitMessage:
		return "commit-message"
	case CategoryIdentifierCasing:
		return "identifier-casing"
	case CategoryNodeSuffix:
		return "node-suffix"
	case CategoryDirectoryPlacement:
		return "directory-placement"
	}
	return "unknown"
}
