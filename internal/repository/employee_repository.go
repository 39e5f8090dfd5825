package repository

import (
	"context"
	"errors"

	"hr-registry/internal/database"
	"hr-registry/internal/domain/employee"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailTaken       = errors.New("email already in use")
)

type EmployeeListFilter struct {
	Department *string
	Status     *employee.EmploymentStatus
	ManagerID  *uuid.UUID
	Page       int
	Size       int
}

type EmployeeRepository interface {
	Create(ctx context.Context, e employee.Employee) (employee.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (employee.Employee, error)
	FindByEmail(ctx context.Context, email string) (employee.Employee, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, e employee.Employee) (employee.Employee, error)
	List(ctx context.Context, f EmployeeListFilter) ([]employee.Employee, int64, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

const employeeColumns = `employee_id, name, role, department, team, employment_status,
	fte_allocation, work_location, manager_id, hire_date, email, created_at, updated_at`

func scanEmployee(row database.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Role, &e.Department, &e.Team, &e.EmploymentStatus,
		&e.FTEAllocation, &e.WorkLocation, &e.ManagerID, &e.HireDate, &e.Email,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO hr_employees
		 (employee_id, name, role, department, team, employment_status, fte_allocation,
		  work_location, manager_id, hire_date, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		 RETURNING `+employeeColumns,
		e.ID, e.Name, e.Role, e.Department, e.Team, e.EmploymentStatus,
		e.FTEAllocation, e.WorkLocation, e.ManagerID, e.HireDate, e.Email,
	)

	created, err := scanEmployee(row)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, ErrEmailTaken
		}
		return employee.Employee{}, err
	}
	return created, nil
}

func (r *PostgresEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM hr_employees WHERE employee_id = $1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if isNoRows(err) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) FindByEmail(ctx context.Context, email string) (employee.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM hr_employees WHERE email = $1`, email)
	e, err := scanEmployee(row)
	if err != nil {
		if isNoRows(err) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hr_employees WHERE employee_id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE hr_employees
		 SET name = $2, role = $3, department = $4, team = $5, employment_status = $6,
		     fte_allocation = $7, work_location = $8, manager_id = $9, hire_date = $10,
		     email = $11, updated_at = now()
		 WHERE employee_id = $1
		 RETURNING `+employeeColumns,
		e.ID, e.Name, e.Role, e.Department, e.Team, e.EmploymentStatus,
		e.FTEAllocation, e.WorkLocation, e.ManagerID, e.HireDate, e.Email,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		if isNoRows(err) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, ErrEmailTaken
		}
		return employee.Employee{}, err
	}
	return updated, nil
}

func (r *PostgresEmployeeRepository) List(ctx context.Context, f EmployeeListFilter) ([]employee.Employee, int64, error) {
	where := `WHERE ($1::text IS NULL OR department = $1)
		 AND ($2::text IS NULL OR employment_status = $2)
		 AND ($3::uuid IS NULL OR manager_id = $3)`
	args := []any{f.Department, employmentStatusArg(f.Status), f.ManagerID}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM hr_employees `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM hr_employees `+where+` ORDER BY name ASC LIMIT $4 OFFSET $5`,
		append(args, f.Size, f.Page*f.Size)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Role, &e.Department, &e.Team, &e.EmploymentStatus,
			&e.FTEAllocation, &e.WorkLocation, &e.ManagerID, &e.HireDate, &e.Email,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func employmentStatusArg(s *employee.EmploymentStatus) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
