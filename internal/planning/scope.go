package planning

// ScopeKind selects the project visibility rule for acceptance views.
type ScopeKind int

const (
	// ScopeAll applies no project restriction.
	ScopeAll ScopeKind = iota
	// ScopeUnscopedOnly keeps only items not tied to any project.
	ScopeUnscopedOnly
	// ScopeProject keeps one project's items plus unscoped items.
	ScopeProject
)

// ProjectScope is the three-way project visibility request. It only
// takes effect on the TEST/ACCEPTANCE environment; other tiers always
// behave as ScopeAll.
type ProjectScope struct {
	Kind    ScopeKind
	Project string
}

// AllProjects returns the unrestricted scope.
func AllProjects() ProjectScope {
	return ProjectScope{Kind: ScopeAll}
}

// UnscopedOnly returns the scope keeping only project-less items.
func UnscopedOnly() ProjectScope {
	return ProjectScope{Kind: ScopeUnscopedOnly}
}

// ForProject returns the scope for one project. Unscoped items are
// assumed relevant to every project's view and are kept as well.
func ForProject(project string) ProjectScope {
	return ProjectScope{Kind: ScopeProject, Project: project}
}

// FilterScope narrows matched items by the project scope. Outside the
// acceptance environment, or for ScopeAll, the input is returned
// unchanged. The filter is idempotent.
func FilterScope(items []ScheduledItem, env Environment, scope ProjectScope) []ScheduledItem {
	if env != EnvAcceptance || scope.Kind == ScopeAll {
		return items
	}

	var kept []ScheduledItem
	for _, item := range items {
		switch scope.Kind {
		case ScopeUnscopedOnly:
			if item.Project == "" {
				kept = append(kept, item)
			}
		case ScopeProject:
			if item.Project == "" || item.Project == scope.Project {
				kept = append(kept, item)
			}
		}
	}
	return kept
}
