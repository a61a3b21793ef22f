package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusinfo/internal/models"
)

// Classroom filters.
type ClassroomFilters struct {
	Dept   string
	Search string
}

func (db *DB) GetAllClassrooms(ctx context.Context, f ClassroomFilters) ([]*models.Classroom, error) {
	query := `SELECT id, room_number, building, dept, capacity, facilities, created_at, updated_at
              FROM classrooms WHERE 1=1`
	var args []any
	if f.Dept != "" {
		query += ` AND dept = ?`
		args = append(args, f.Dept)
	}
	if f.Search != "" {
		query += ` AND (room_number LIKE ? OR building LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY room_number`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := make([]*models.Classroom, 0)
	for rows.Next() {
		c := &models.Classroom{}
		if err := rows.Scan(&c.ID, &c.RoomNumber, &c.Building, &c.Dept, &c.Capacity,
			&c.Facilities, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan classroom: %w", err)
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

func (db *DB) GetClassroomByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := `SELECT id, room_number, building, dept, capacity, facilities, created_at, updated_at
              FROM classrooms WHERE id = ?`
	c := &models.Classroom{}
	err := db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.RoomNumber, &c.Building, &c.Dept,
		&c.Capacity, &c.Facilities, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get classroom: %w", err)
	}
	return c, nil
}

func (db *DB) CreateClassroom(ctx context.Context, c *models.Classroom) error {
	query := `INSERT INTO classrooms (room_number, building, dept, capacity, facilities, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query, c.RoomNumber, c.Building, c.Dept, c.Capacity, c.Facilities, now, now)
	if err != nil {
		return translateConstraint(err)
	}
	c.ID, _ = result.LastInsertId()
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

func (db *DB) UpdateClassroom(ctx context.Context, c *models.Classroom) error {
	query := `UPDATE classrooms SET room_number = ?, building = ?, dept = ?, capacity = ?,
                 facilities = ?, updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, c.RoomNumber, c.Building, c.Dept, c.Capacity,
		c.Facilities, time.Now(), c.ID)
	if err != nil {
		return translateConstraint(err)
	}
	return requireRow(result)
}

func (db *DB) DeleteClassroom(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM classrooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete classroom: %w", err)
	}
	return requireRow(result)
}

// Lab filters.
type LabFilters struct {
	Status string
	Search string
}

func (db *DB) GetAllLabs(ctx context.Context, f LabFilters) ([]*models.Lab, error) {
	query := `SELECT id, name, dept, capacity, status, equipment, created_at, updated_at
              FROM labs WHERE 1=1`
	var args []any
	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	if f.Search != "" {
		query += ` AND (name LIKE ? OR dept LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get labs: %w", err)
	}
	defer rows.Close()

	labs := make([]*models.Lab, 0)
	for rows.Next() {
		l := &models.Lab{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Dept, &l.Capacity, &l.Status,
			&l.Equipment, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lab: %w", err)
		}
		labs = append(labs, l)
	}
	return labs, rows.Err()
}

func (db *DB) GetLabByID(ctx context.Context, id int64) (*models.Lab, error) {
	query := `SELECT id, name, dept, capacity, status, equipment, created_at, updated_at
              FROM labs WHERE id = ?`
	l := &models.Lab{}
	err := db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name, &l.Dept, &l.Capacity,
		&l.Status, &l.Equipment, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lab: %w", err)
	}
	return l, nil
}

func (db *DB) CreateLab(ctx context.Context, l *models.Lab) error {
	query := `INSERT INTO labs (name, dept, capacity, status, equipment, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	if l.Status == "" {
		l.Status = "available"
	}
	result, err := db.ExecContext(ctx, query, l.Name, l.Dept, l.Capacity, l.Status, l.Equipment, now, now)
	if err != nil {
		return translateConstraint(err)
	}
	l.ID, _ = result.LastInsertId()
	l.CreatedAt = now
	l.UpdatedAt = now
	return nil
}

func (db *DB) UpdateLab(ctx context.Context, l *models.Lab) error {
	query := `UPDATE labs SET name = ?, dept = ?, capacity = ?, status = ?,
                 equipment = ?, updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, l.Name, l.Dept, l.Capacity, l.Status,
		l.Equipment, time.Now(), l.ID)
	if err != nil {
		return translateConstraint(err)
	}
	return requireRow(result)
}

func (db *DB) DeleteLab(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM labs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lab: %w", err)
	}
	return requireRow(result)
}

func (db *DB) UpdateLabStatus(ctx context.Context, id int64, status string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE labs SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update lab status: %w", err)
	}
	return requireRow(result)
}

// Bus filters.
type BusFilters struct {
	Search string
}

func (db *DB) GetAllBuses(ctx context.Context, f BusFilters) ([]*models.Bus, error) {
	query := `SELECT id, bus_number, route_name, departure_time, arrival_time, stops, capacity, created_at, updated_at
              FROM buses WHERE 1=1`
	var args []any
	if f.Search != "" {
		query += ` AND (bus_number LIKE ? OR route_name LIKE ? OR stops LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY bus_number`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get buses: %w", err)
	}
	defer rows.Close()

	buses := make([]*models.Bus, 0)
	for rows.Next() {
		b := &models.Bus{}
		if err := rows.Scan(&b.ID, &b.BusNumber, &b.RouteName, &b.DepartureTime, &b.ArrivalTime,
			&b.Stops, &b.Capacity, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bus: %w", err)
		}
		buses = append(buses, b)
	}
	return buses, rows.Err()
}

func (db *DB) CreateBus(ctx context.Context, b *models.Bus) error {
	query := `INSERT INTO buses (bus_number, route_name, departure_time, arrival_time, stops, capacity, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query, b.BusNumber, b.RouteName, b.DepartureTime,
		b.ArrivalTime, b.Stops, b.Capacity, now, now)
	if err != nil {
		return translateConstraint(err)
	}
	b.ID, _ = result.LastInsertId()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (db *DB) UpdateBus(ctx context.Context, b *models.Bus) error {
	query := `UPDATE buses SET bus_number = ?, route_name = ?, departure_time = ?, arrival_time = ?,
                 stops = ?, capacity = ?, updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, b.BusNumber, b.RouteName, b.DepartureTime,
		b.ArrivalTime, b.Stops, b.Capacity, time.Now(), b.ID)
	if err != nil {
		return translateConstraint(err)
	}
	return requireRow(result)
}

func (db *DB) DeleteBus(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM buses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bus: %w", err)
	}
	return requireRow(result)
}

// MenuItem filters.
type MenuFilters struct {
	Category     string
	Availability string
	Search       string
}

func (db *DB) GetAllMenuItems(ctx context.Context, f MenuFilters) ([]*models.MenuItem, error) {
	query := `SELECT id, name, category, price, availability, description, created_at, updated_at
              FROM menu_items WHERE 1=1`
	var args []any
	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Availability != "" {
		query += ` AND availability = ?`
		args = append(args, f.Availability)
	}
	if f.Search != "" {
		query += ` AND (name LIKE ? OR description LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY category, name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.MenuItem, 0)
	for rows.Next() {
		m := &models.MenuItem{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Availability,
			&m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (db *DB) GetMenuItemByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	query := `SELECT id, name, category, price, availability, description, created_at, updated_at
              FROM menu_items WHERE id = ?`
	m := &models.MenuItem{}
	err := db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Category, &m.Price,
		&m.Availability, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return m, nil
}

func (db *DB) CreateMenuItem(ctx context.Context, m *models.MenuItem) error {
	query := `INSERT INTO menu_items (name, category, price, availability, description, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	if m.Availability == "" {
		m.Availability = "available"
	}
	result, err := db.ExecContext(ctx, query, m.Name, m.Category, m.Price, m.Availability, m.Description, now, now)
	if err != nil {
		return translateConstraint(err)
	}
	m.ID, _ = result.LastInsertId()
	m.CreatedAt = now
	m.UpdatedAt = now
	return nil
}

func (db *DB) UpdateMenuItem(ctx context.Context, m *models.MenuItem) error {
	query := `UPDATE menu_items SET name = ?, category = ?, price = ?, availability = ?,
                 description = ?, updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, m.Name, m.Category, m.Price, m.Availability,
		m.Description, time.Now(), m.ID)
	if err != nil {
		return translateConstraint(err)
	}
	return requireRow(result)
}

func (db *DB) DeleteMenuItem(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return requireRow(result)
}

func (db *DB) GetCafeteriaInfo(ctx context.Context) (*models.CafeteriaInfo, error) {
	query := `SELECT id, name, location, opening_hours, contact FROM cafeteria_info WHERE id = 1`
	info := &models.CafeteriaInfo{}
	err := db.QueryRowContext(ctx, query).Scan(&info.ID, &info.Name, &info.Location,
		&info.OpeningHours, &info.Contact)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cafeteria info: %w", err)
	}
	return info, nil
}

func (db *DB) UpdateCafeteriaInfo(ctx context.Context, info *models.CafeteriaInfo) error {
	query := `UPDATE cafeteria_info SET name = ?, location = ?, opening_hours = ?, contact = ? WHERE id = 1`
	_, err := db.ExecContext(ctx, query, info.Name, info.Location, info.OpeningHours, info.Contact)
	if err != nil {
		return fmt.Errorf("failed to update cafeteria info: %w", err)
	}
	info.ID = 1
	return nil
}

// ResourceName resolves the display name for a resource reference. Unknown
// ids resolve to an empty string rather than an error; booking rows are not
// foreign-keyed to resources.
func (db *DB) ResourceName(ctx context.Context, resourceType string, resourceID int64) (string, error) {
	var (
		query string
		name  string
	)
	switch resourceType {
	case models.ResourceClassroom:
		query = `SELECT room_number FROM classrooms WHERE id = ?`
	case models.ResourceLab:
		query = `SELECT name FROM labs WHERE id = ?`
	case models.ResourceBus:
		query = `SELECT route_name FROM buses WHERE id = ?`
	case models.ResourceCafeteria:
		return "Cafeteria", nil
	default:
		return "", nil
	}

	err := db.QueryRowContext(ctx, query, resourceID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve resource name: %w", err)
	}
	return name, nil
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
