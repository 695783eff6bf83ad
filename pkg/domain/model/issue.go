package model

import "fmt"

// Issue is a GitHub issue fetched from the source repository. It is read-only;
// the clone flow never mutates it, only copies fields into an IssuePayload.
type Issue struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	State   string   `json:"state"`
	Labels  []string `json:"labels"`
	Locked  bool     `json:"locked"`
	HTMLURL string   `json:"html_url"`
}

// IssuePayload is the creation request body for the cloned issue.
type IssuePayload struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
	State  string   `json:"state"`
}

const attachmentNote = "*Note: Images and attachments may not display correctly.*"

// NewIssuePayload builds the creation payload for a clone of src. The title,
// labels and state are copied verbatim. The body gets a note about attachments
// and a provenance line pointing back to the original issue.
func NewIssuePayload(src *Issue) *IssuePayload {
	return &IssuePayload{
		Title:  src.Title,
		Body:   fmt.Sprintf("%s\n\n%s\n\n---\n*Cloned from original issue: %s*", src.Body, attachmentNote, src.HTMLURL),
		Labels: src.Labels,
		State:  src.State,
	}
}
