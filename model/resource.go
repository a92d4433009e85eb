package model

import (
	"fmt"
	"slices"

	"github.com/Alp4ka/hotelpager"
)

// Resource describes one entity collection of the backend: its URL segment
// and the sort aliases a list request may use.
type Resource struct {
	Name string
	Sort hotelpager.ColumnMapping
}

// DefaultOrder keeps list pages deterministic after client-supplied sorting.
func (r Resource) DefaultOrder() hotelpager.OrderBy {
	return hotelpager.OrderBy{Column: r.Name + ".id", Direction: hotelpager.DirectionASC}
}

var (
	Bookings = Resource{
		Name: "bookings",
		Sort: hotelpager.ColumnMapping{
			"id":       "bookings.id",
			"guest":    "bookings.guest_name",
			"checkIn":  "bookings.check_in",
			"checkOut": "bookings.check_out",
			"status":   "bookings.status",
		},
	}
	Rooms = Resource{
		Name: "rooms",
		Sort: hotelpager.ColumnMapping{
			"id":     "rooms.id",
			"number": "rooms.number",
			"floor":  "rooms.floor",
			"rate":   "rooms.rate",
			"status": "rooms.status",
		},
	}
	Employees = Resource{
		Name: "employees",
		Sort: hotelpager.ColumnMapping{
			"id":        "employees.id",
			"lastName":  "employees.last_name",
			"position":  "employees.position",
			"hiredAt":   "employees.hired_at",
			"salary":    "employees.salary",
			"firstName": "employees.first_name",
		},
	}
	Inventory = Resource{
		Name: "inventory",
		Sort: hotelpager.ColumnMapping{
			"id":       "inventory.id",
			"name":     "inventory.name",
			"category": "inventory.category",
			"quantity": "inventory.quantity",
		},
	}
	Assets = Resource{
		Name: "assets",
		Sort: hotelpager.ColumnMapping{
			"id":           "assets.id",
			"name":         "assets.name",
			"location":     "assets.location",
			"purchaseDate": "assets.purchase_date",
			"condition":    "assets.condition",
		},
	}
	Maintenance = Resource{
		Name: "maintenance_schedules",
		Sort: hotelpager.ColumnMapping{
			"id":          "maintenance_schedules.id",
			"scheduledAt": "maintenance_schedules.scheduled_at",
			"status":      "maintenance_schedules.status",
		},
	}
	WorkSchedules = Resource{
		Name: "work_schedules",
		Sort: hotelpager.ColumnMapping{
			"id":         "work_schedules.id",
			"employee":   "work_schedules.employee_id",
			"shiftStart": "work_schedules.shift_start",
		},
	}
)

// Resources lists every collection in the order the dashboard shows them.
var Resources = []Resource{Bookings, Rooms, Employees, Inventory, Assets, Maintenance, WorkSchedules}

// LookupResource finds a collection by name.
func LookupResource(name string) (Resource, error) {
	idx := slices.IndexFunc(Resources, func(r Resource) bool { return r.Name == name })
	if idx < 0 {
		return Resource{}, fmt.Errorf("unknown resource '%s'", name)
	}

	return Resources[idx], nil
}
