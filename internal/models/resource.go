package models

import "time"

type Classroom struct {
	ID         int64     `json:"id"`
	RoomNumber string    `json:"room_number"`
	Building   string    `json:"building"`
	Dept       string    `json:"dept"`
	Capacity   int64     `json:"capacity"`
	Facilities string    `json:"facilities"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Lab struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Dept      string    `json:"dept"`
	Capacity  int64     `json:"capacity"`
	Status    string    `json:"status"` // available, occupied, maintenance
	Equipment string    `json:"equipment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Bus struct {
	ID            int64     `json:"id"`
	BusNumber     string    `json:"bus_number"`
	RouteName     string    `json:"route_name"`
	DepartureTime string    `json:"departure_time"`
	ArrivalTime   string    `json:"arrival_time"`
	Stops         string    `json:"stops"`
	Capacity      int64     `json:"capacity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"` // breakfast, lunch, dinner, snacks
	Price        float64   `json:"price"`
	Availability string    `json:"availability"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CafeteriaInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	OpeningHours string `json:"opening_hours"`
	Contact      string `json:"contact"`
}
