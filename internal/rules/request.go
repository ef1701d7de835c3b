package rules

import (
	"strings"

	"conform/internal/match"
)

// Request is the typed input of one validation, tagged by what kind of
// artifact it represents. Requests are created per check and never mutated.
type Request interface {
	Category() Category
	// Input is the raw text diagnostics spans refer to.
	Input() string
}

// BranchNameRequest checks a raw git branch name.
type BranchNameRequest struct {
	Raw string
}

func (BranchNameRequest) Category() Category { return CategoryBranchName }
func (r BranchNameRequest) Input() string    { return r.Raw }

// CommitMessageRequest checks a commit message headline.
type CommitMessageRequest struct {
	Raw string
}

func (CommitMessageRequest) Category() Category { return CategoryCommitMessage }
func (r CommitMessageRequest) Input() string    { return r.Raw }

// IdentifierRequest checks a source identifier of a declared kind. Node names
// additionally go through the node-suffix rules.
type IdentifierRequest struct {
	Name string
	Kind match.IdentKind
}

func (IdentifierRequest) Category() Category { return CategoryIdentifierCasing }
func (r IdentifierRequest) Input() string    { return r.Name }

// PathRequest checks the placement of an artifact in the project tree.
type PathRequest struct {
	Segments []string
	Kind     match.ArtifactKind
}

func (PathRequest) Category() Category { return CategoryDirectoryPlacement }
func (r PathRequest) Input() string    { return strings.Join(r.Segments, "/") }
