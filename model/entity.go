// Package model holds the hotel entities shared by the API client and the
// backend routes, together with their field validation rules.
package model

import "time"

// Identifiable is implemented by every entity through the embedded Base.
type Identifiable interface {
	GetID() uint
	SetID(id uint)
}

// Base carries the primary key of an entity.
type Base struct {
	ID uint `json:"id" gorm:"primaryKey"`
}

func (b *Base) GetID() uint {
	return b.ID
}

func (b *Base) SetID(id uint) {
	b.ID = id
}

type Booking struct {
	Base
	GuestName  string    `json:"guestName" validate:"required,max=128"`
	GuestEmail string    `json:"guestEmail,omitempty" validate:"omitempty,email"`
	RoomID     uint      `json:"roomId" validate:"required"`
	CheckIn    time.Time `json:"checkIn" validate:"required"`
	CheckOut   time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
	Guests     int       `json:"guests" validate:"min=1,max=10"`
	Status     string    `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

func (Booking) TableName() string { return "bookings" }

type Room struct {
	Base
	Number   string  `json:"number" validate:"required,alphanum,max=10"`
	Type     string  `json:"type" validate:"required,oneof=single double twin suite"`
	Floor    int     `json:"floor" validate:"min=0,max=200"`
	Capacity int     `json:"capacity" validate:"min=1,max=12"`
	Rate     float64 `json:"rate" validate:"gt=0"`
	Status   string  `json:"status" validate:"required,oneof=available occupied cleaning maintenance"`
}

func (Room) TableName() string { return "rooms" }

type Employee struct {
	Base
	FirstName string    `json:"firstName" validate:"required,max=64"`
	LastName  string    `json:"lastName" validate:"required,max=64"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Position  string    `json:"position" validate:"required"`
	Salary    float64   `json:"salary" validate:"gte=0"`
	HiredAt   time.Time `json:"hiredAt" validate:"required"`
}

func (Employee) TableName() string { return "employees" }

type InventoryItem struct {
	Base
	Name         string `json:"name" validate:"required,max=128"`
	Category     string `json:"category" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	Unit         string `json:"unit" validate:"required"`
	ReorderLevel int    `json:"reorderLevel" validate:"gte=0"`
}

func (InventoryItem) TableName() string { return "inventory" }

// BelowReorderLevel reports whether the stock should be replenished.
func (i InventoryItem) BelowReorderLevel() bool {
	return i.Quantity <= i.ReorderLevel
}

type Asset struct {
	Base
	Name         string    `json:"name" validate:"required,max=128"`
	Tag          string    `json:"tag" validate:"required,alphanum"`
	Location     string    `json:"location" validate:"required"`
	PurchaseDate time.Time `json:"purchaseDate" validate:"required"`
	Value        float64   `json:"value" validate:"gte=0"`
	Condition    string    `json:"condition" validate:"required,oneof=new good fair poor retired"`
}

func (Asset) TableName() string { return "assets" }

// MaintenanceSchedule is planned work on either an asset or a room.
type MaintenanceSchedule struct {
	Base
	AssetID     *uint     `json:"assetId,omitempty" validate:"required_without=RoomID"`
	RoomID      *uint     `json:"roomId,omitempty" validate:"required_without=AssetID"`
	Task        string    `json:"task" validate:"required,max=256"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	AssignedTo  *uint     `json:"assignedTo,omitempty"`
	Status      string    `json:"status" validate:"required,oneof=scheduled in_progress done cancelled"`
}

func (MaintenanceSchedule) TableName() string { return "maintenance_schedules" }

type WorkSchedule struct {
	Base
	EmployeeID uint      `json:"employeeId" validate:"required"`
	ShiftStart time.Time `json:"shiftStart" validate:"required"`
	ShiftEnd   time.Time `json:"shiftEnd" validate:"required,gtfield=ShiftStart"`
	Role       string    `json:"role" validate:"required"`
}

func (WorkSchedule) TableName() string { return "work_schedules" }
