package linear

const teamsQuery = `query Teams {
  teams {
    nodes {
      id
      name
      issueCount
    }
  }
}`

const teamIssuesQuery = `query TeamIssues($teamId: String!) {
  team(id: $teamId) {
    issues {
      nodes {
        id
        title
        description
      }
    }
  }
}`

const issueQuery = `query Issue($issueId: String!) {
  issue(id: $issueId) {
    title
    description
    url
    comments {
      nodes {
        body
      }
    }
  }
}`

type teamsData struct {
	Teams struct {
		Nodes []Team `json:"nodes"`
	} `json:"teams"`
}

type teamIssuesData struct {
	Team *struct {
		Issues struct {
			Nodes []TeamIssue `json:"nodes"`
		} `json:"issues"`
	} `json:"team"`
}

type issueData struct {
	Issue *struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		URL         string  `json:"url"`
		Comments    struct {
			Nodes []Comment `json:"nodes"`
		} `json:"comments"`
	} `json:"issue"`
}
