package team

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T) *Registry {
	t.Helper()
	dir := t.TempDir()

	employees := `- name: Anna Schmidt
  nickname: anna
  work_email: anna@example.com
  private_email: anna@home.example
- name: Boris Ivanov
  nickname: boris
  work_email: boris@example.com
`
	if err := os.WriteFile(filepath.Join(dir, "employees.yaml"), []byte(employees), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "customers"), 0o755); err != nil {
		t.Fatal(err)
	}
	customer := "name: Acme Industries\nshort_name: acme\n"
	if err := os.WriteFile(filepath.Join(dir, "customers", "acme_industries.yaml"), []byte(customer), 0o644); err != nil {
		t.Fatal(err)
	}

	return NewRegistry(dir)
}

func TestEmployeeByNickname(t *testing.T) {
	r := writeRegistry(t)

	e, err := r.EmployeeByNickname("anna")
	if err != nil {
		t.Fatalf("EmployeeByNickname() failed: %v", err)
	}
	if e.Name != "Anna Schmidt" {
		t.Errorf("Name = %q", e.Name)
	}

	if _, err := r.EmployeeByNickname("carl"); err == nil {
		t.Error("expected error for unknown nickname")
	}
}

func TestEmployeeByEmail(t *testing.T) {
	r := writeRegistry(t)

	tests := []struct {
		email string
		want  string
	}{
		{"anna@home.example", "Anna Schmidt"},
		{"boris@example.com", "Boris Ivanov"},
	}
	for _, tt := range tests {
		e, err := r.EmployeeByEmail(tt.email)
		if err != nil {
			t.Fatalf("EmployeeByEmail(%q) failed: %v", tt.email, err)
		}
		if e.Name != tt.want {
			t.Errorf("EmployeeByEmail(%q) = %q, want %q", tt.email, e.Name, tt.want)
		}
	}

	if _, err := r.EmployeeByEmail("nobody@example.com"); err == nil {
		t.Error("expected error for unknown email")
	}
}

func TestCustomer(t *testing.T) {
	r := writeRegistry(t)

	t.Run("by file name", func(t *testing.T) {
		c, err := r.Customer("acme_industries")
		if err != nil {
			t.Fatalf("Customer() failed: %v", err)
		}
		if c.Name != "Acme Industries" {
			t.Errorf("Name = %q", c.Name)
		}
	})

	t.Run("by short name", func(t *testing.T) {
		c, err := r.Customer("acme")
		if err != nil {
			t.Fatalf("Customer() failed: %v", err)
		}
		if c.Name != "Acme Industries" {
			t.Errorf("Name = %q", c.Name)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := r.Customer("globex"); err == nil {
			t.Error("expected error for unknown customer")
		}
	})
}
