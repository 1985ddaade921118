package toggl

import (
	"context"
	"fmt"
	"strings"
)

// Catalog maps project names to ids and back for the selected Toggl clients.
// Names are case-folded, matching the canonical record's project field.
type Catalog struct {
	idsByName map[string]int64
	namesByID map[int64]string
}

// LoadCatalog fetches clients and their projects. When clientNames is
// non-empty, only projects of the named clients are included.
func (c *Client) LoadCatalog(ctx context.Context, clientNames []string) (*Catalog, error) {
	clients, err := c.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading clients: %w", err)
	}

	wanted := make(map[string]bool, len(clientNames))
	for _, name := range clientNames {
		wanted[name] = true
	}

	selected := make(map[int64]bool)
	for _, client := range clients {
		if len(wanted) > 0 && !wanted[client.Name] {
			continue
		}
		selected[client.ID] = true
	}

	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	catalog := &Catalog{
		idsByName: make(map[string]int64),
		namesByID: make(map[int64]string),
	}
	for _, p := range projects {
		if !selected[p.ClientID] {
			continue
		}
		name := strings.ToLower(p.Name)
		catalog.idsByName[name] = p.ID
		catalog.namesByID[p.ID] = name
	}
	return catalog, nil
}

// ProjectID looks up a project id by case-folded name.
func (c *Catalog) ProjectID(name string) (int64, bool) {
	id, ok := c.idsByName[strings.ToLower(name)]
	return id, ok
}

// ProjectName looks up a case-folded project name by id.
func (c *Catalog) ProjectName(id int64) (string, bool) {
	name, ok := c.namesByID[id]
	return name, ok
}
