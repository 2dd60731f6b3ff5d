package linear

type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IssueCount int    `json:"issueCount"`
}

// TeamIssue is the summary shown in a team's issue list. A nil Description
// means the issue has none, which is not the same as an empty one.
type TeamIssue struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type Comment struct {
	Body string `json:"body"`
}

type IssueDetail struct {
	Title       string
	Description string
	Comments    []Comment
	URL         string
}
