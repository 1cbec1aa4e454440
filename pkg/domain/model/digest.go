package model

import (
	"fmt"
	"strings"
	"time"
)

// DigestEntry is one rendered block of a digest: *Notice or *Section
type DigestEntry interface {
	writeMarkdown(b *strings.Builder)
}

// Notice is a single-line failure notice
type Notice struct {
	Message string
}

// Section lists the issues found in one repository. Issues keep upstream order.
type Section struct {
	Ref    RepoRef
	Issues []*Issue
}

// Digest accumulates the output of one pipeline run. Entries are appended in
// processing order and the digest is not modified after the run returns it.
type Digest struct {
	Title       string
	GeneratedAt time.Time
	Entries     []DigestEntry
}

// NewDigest creates an empty digest
func NewDigest(title string, generatedAt time.Time) *Digest {
	return &Digest{
		Title:       title,
		GeneratedAt: generatedAt,
	}
}

// Append records the result of collecting ref. Failures become a notice,
// empty successes are omitted.
func (d *Digest) Append(ref RepoRef, result *CollectionResult) {
	switch {
	case result.Failed():
		d.AppendNotice(fmt.Sprintf("Failed to find issues for %s!", ref.FullName()))
	case len(result.Issues) == 0:
		return
	default:
		d.Entries = append(d.Entries, &Section{Ref: ref, Issues: result.Issues})
	}
}

// AppendOrgFailure records a failed wildcard expansion of org
func (d *Digest) AppendOrgFailure(org string) {
	d.AppendNotice(fmt.Sprintf("Failed to fetch repos under %s!", org))
}

// AppendNotice records an arbitrary notice
func (d *Digest) AppendNotice(message string) {
	d.Entries = append(d.Entries, &Notice{Message: message})
}

// Sections returns the section entries in order
func (d *Digest) Sections() []*Section {
	var sections []*Section
	for _, entry := range d.Entries {
		if s, ok := entry.(*Section); ok {
			sections = append(sections, s)
		}
	}
	return sections
}

// Notices returns the notice entries in order
func (d *Digest) Notices() []*Notice {
	var notices []*Notice
	for _, entry := range d.Entries {
		if n, ok := entry.(*Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}

// Markdown assembles the digest into one markdown document
func (d *Digest) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", d.Title)
	fmt.Fprintf(&b, "Generated at %s\n\n", d.GeneratedAt.Format(time.RFC1123))

	for _, entry := range d.Entries {
		entry.writeMarkdown(&b)
	}
	return b.String()
}

func (n *Notice) writeMarkdown(b *strings.Builder) {
	fmt.Fprintf(b, "### %s\n", n.Message)
}

func (s *Section) writeMarkdown(b *strings.Builder) {
	fmt.Fprintf(b, "## <font color=\"green\">%s</font>\n", s.Ref.FullName())
	for _, issue := range s.Issues {
		b.WriteString("---\n")
		fmt.Fprintf(b, "### [%s](%s)\n", escapeLinkText(issue.Title), issue.URL)
		fmt.Fprintf(b, "#### Created at: %s\n", issue.CreatedAt.UTC().Format(time.RFC3339))
		b.WriteString("---\n")
	}
}

// Titles come from upstream and raw HTML is enabled when rendering, so
// markup characters are neutralized along with link brackets.
var linkTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
)

func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}
