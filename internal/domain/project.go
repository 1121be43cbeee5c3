package domain

// Project is the Linear project an update belongs to.
type Project struct {
	ID          string // required for grouping; updates without it are dropped
	Name        string
	Description string
	State       string // lifecycle state: "started", "planned", "backlog", ...
	Priority    int    // 1 (urgent) through 4 (low); 0 means no priority
	Status      ProjectStatus
}

// ProjectStatus is the human-facing status label attached to a project.
type ProjectStatus struct {
	ID   string
	Name string
	Type string
}
