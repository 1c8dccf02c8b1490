package planning

import (
	"testing"
)

func scopeFixture() (alpha, unscoped ScheduledItem, items []ScheduledItem) {
	alpha = ScheduledItem{
		Application: "PAY", Environment: EnvAcceptance, Category: CategoryTest,
		StartDate: date(2026, 3, 11), EndDate: date(2026, 3, 11), Project: "ALPHA",
	}
	unscoped = ScheduledItem{
		Application: "PAY", Environment: EnvAcceptance, Category: CategoryTest,
		StartDate: date(2026, 3, 11), EndDate: date(2026, 3, 11),
	}
	return alpha, unscoped, []ScheduledItem{alpha, unscoped}
}

func TestFilterScope_AcceptanceRules(t *testing.T) {
	alpha, unscoped, items := scopeFixture()

	tests := []struct {
		name  string
		scope ProjectScope
		want  []ScheduledItem
	}{
		{"all keeps everything", AllProjects(), []ScheduledItem{alpha, unscoped}},
		{"unscoped only", UnscopedOnly(), []ScheduledItem{unscoped}},
		{"matching project plus unscoped", ForProject("ALPHA"), []ScheduledItem{alpha, unscoped}},
		{"other project keeps only unscoped", ForProject("BETA"), []ScheduledItem{unscoped}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterScope(items, EnvAcceptance, tt.scope)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("item %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterScope_OtherEnvironmentsUnrestricted(t *testing.T) {
	prodAlpha := ScheduledItem{
		Application: "PAY", Environment: EnvProd, Category: CategoryDeployment,
		StartDate: date(2026, 3, 11), EndDate: date(2026, 3, 11), Project: "ALPHA",
	}
	items := []ScheduledItem{prodAlpha}

	for _, env := range []Environment{EnvProd, EnvPreProd} {
		for _, scope := range []ProjectScope{UnscopedOnly(), ForProject("BETA")} {
			got := FilterScope(items, env, scope)
			if len(got) != 1 {
				t.Errorf("env %s scope %+v filtered items, want unchanged", env, scope)
			}
		}
	}
}

func TestFilterScope_Idempotent(t *testing.T) {
	_, _, items := scopeFixture()

	scopes := []ProjectScope{AllProjects(), UnscopedOnly(), ForProject("ALPHA"), ForProject("BETA")}
	for _, scope := range scopes {
		once := FilterScope(items, EnvAcceptance, scope)
		twice := FilterScope(once, EnvAcceptance, scope)
		if len(once) != len(twice) {
			t.Errorf("scope %+v not idempotent: %d then %d", scope, len(once), len(twice))
			continue
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Errorf("scope %+v not idempotent at item %d", scope, i)
			}
		}
	}
}

func TestFilterScope_Guarantees(t *testing.T) {
	_, _, items := scopeFixture()

	for _, item := range FilterScope(items, EnvAcceptance, UnscopedOnly()) {
		if item.Project != "" {
			t.Errorf("UnscopedOnly returned project %q", item.Project)
		}
	}

	for _, item := range FilterScope(items, EnvAcceptance, ForProject("ALPHA")) {
		if item.Project != "" && item.Project != "ALPHA" {
			t.Errorf("ForProject(ALPHA) returned project %q", item.Project)
		}
	}
}
