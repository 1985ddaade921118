// Package team reads the YAML registry of employees and customers that
// accompanies the spreadsheets.
package team

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Employee is one entry of employees.yaml.
type Employee struct {
	Name         string `yaml:"name"`
	Nickname     string `yaml:"nickname"`
	WorkEmail    string `yaml:"work_email"`
	PrivateEmail string `yaml:"private_email"`
}

// Customer is one file under customers/.
type Customer struct {
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name"`
}

// Registry reads employees and customers from a database directory holding
// employees.yaml and a customers/ subdirectory with one file per customer.
type Registry struct {
	dir string
}

func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir}
}

// Employees loads the full employee list.
func (r *Registry) Employees() ([]Employee, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, "employees.yaml"))
	if err != nil {
		return nil, fmt.Errorf("reading employee file: %w", err)
	}
	var employees []Employee
	if err := yaml.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("parsing employee file: %w", err)
	}
	return employees, nil
}

// EmployeeByNickname finds an employee by nickname.
func (r *Registry) EmployeeByNickname(nickname string) (Employee, error) {
	employees, err := r.Employees()
	if err != nil {
		return Employee{}, err
	}
	for _, e := range employees {
		if e.Nickname == nickname {
			return e, nil
		}
	}
	return Employee{}, fmt.Errorf("employee %q was not found", nickname)
}

// EmployeeByEmail finds an employee by private or work e-mail.
func (r *Registry) EmployeeByEmail(email string) (Employee, error) {
	employees, err := r.Employees()
	if err != nil {
		return Employee{}, err
	}
	for _, e := range employees {
		if e.PrivateEmail == email || e.WorkEmail == email {
			return e, nil
		}
	}
	return Employee{}, fmt.Errorf("employee %q was not found", email)
}

// Customer loads a customer by file name, falling back to a short-name scan
// across all customer files.
func (r *Registry) Customer(name string) (Customer, error) {
	path := filepath.Join(r.dir, "customers", name+".yaml")
	if data, err := os.ReadFile(path); err == nil {
		var customer Customer
		if err := yaml.Unmarshal(data, &customer); err != nil {
			return Customer{}, fmt.Errorf("parsing customer file %s: %w", path, err)
		}
		return customer, nil
	}
	return r.customerByShortName(name)
}

func (r *Registry) customerByShortName(shortName string) (Customer, error) {
	entries, err := os.ReadDir(filepath.Join(r.dir, "customers"))
	if err != nil {
		return Customer{}, fmt.Errorf("reading customers directory: %w", err)
	}
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(r.dir, "customers", entry.Name()))
		if err != nil {
			return Customer{}, fmt.Errorf("reading customer file %s: %w", entry.Name(), err)
		}
		var customer Customer
		if err := yaml.Unmarshal(data, &customer); err != nil {
			return Customer{}, fmt.Errorf("parsing customer file %s: %w", entry.Name(), err)
		}
		if customer.ShortName == shortName {
			return customer, nil
		}
	}
	return Customer{}, fmt.Errorf("customer %q is not in the customer list", shortName)
}
