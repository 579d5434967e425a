package entities

import (
	"testing"
	"time"
)

func TestDiff(t *testing.T) {
	before := map[string]any{"requestStatus": "Pendente", "feedback": "", "budgetId": ""}
	after := map[string]any{"requestStatus": "Orçamento", "feedback": "enviado", "budgetId": ""}

	changes := Diff(before, after)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d: %+v", len(changes), changes)
	}
	if c := changes["requestStatus"]; c.Before != "Pendente" || c.After != "Orçamento" {
		t.Fatalf("unexpected requestStatus change: %+v", c)
	}
	if _, ok := changes["budgetId"]; ok {
		t.Fatalf("unchanged field must not appear in diff")
	}

	if Diff(before, before) != nil {
		t.Fatalf("identical snapshots must produce nil diff")
	}
}

func TestRecord(t *testing.T) {
	now := time.Now().UTC()
	before := map[string]any{"feedback": "a"}
	after := map[string]any{"feedback": "b"}

	t.Run("no acting user", func(t *testing.T) {
		var history []ModificationEntry
		Record(&history, "", before, after, now)
		if len(history) != 0 {
			t.Fatalf("expected no entry without acting user")
		}
	})

	t.Run("no changes", func(t *testing.T) {
		var history []ModificationEntry
		Record(&history, "user-1", before, before, now)
		if len(history) != 0 {
			t.Fatalf("expected no entry without changes")
		}
	})

	t.Run("appends entry", func(t *testing.T) {
		var history []ModificationEntry
		Record(&history, "user-1", before, after, now)
		if len(history) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(history))
		}
		e := history[0]
		if e.UpdatedBy != "user-1" || !e.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected entry: %+v", e)
		}
		if c := e.Changes["feedback"]; c.Before != "a" || c.After != "b" {
			t.Fatalf("unexpected change: %+v", c)
		}
	})
}

func TestRequestValidateServiceKind(t *testing.T) {
	base := Request{RequestType: RequestTypeManutencao}

	t.Run("none set", func(t *testing.T) {
		if err := base.ValidateServiceKind(); err != ErrRequestServiceKindMissing {
			t.Fatalf("expected ErrRequestServiceKindMissing, got %v", err)
		}
	})

	t.Run("problem only", func(t *testing.T) {
		r := base
		r.MaintenanceProblem = "vazamento"
		if err := r.ValidateServiceKind(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("problem and equipment", func(t *testing.T) {
		r := base
		r.MaintenanceProblem = "vazamento"
		r.InstallationEquipment = "split 12000"
		if err := r.ValidateServiceKind(); err != ErrRequestServiceKindAmbiguous {
			t.Fatalf("expected ErrRequestServiceKindAmbiguous, got %v", err)
		}
	})

	t.Run("problem and services", func(t *testing.T) {
		r := base
		r.MaintenanceProblem = "vazamento"
		r.ServiceIDs = []string{"svc-1"}
		if err := r.ValidateServiceKind(); err != ErrRequestServiceKindAmbiguous {
			t.Fatalf("expected ErrRequestServiceKindAmbiguous, got %v", err)
		}
	})
}

func TestProvisionalEnvID(t *testing.T) {
	if got := ProvisionalEnvID("addr-1", "Sala  de Reunião"); got != "addr-1-sala-de-reunião" {
		t.Fatalf("unexpected provisional env id: %q", got)
	}
}
