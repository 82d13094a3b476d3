package repositories

import (
	"buddies-inn/config"
	"buddies-inn/models"
	"context"
	"time"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		context.Background(),
		query,
		user.Email,
		user.Password,
		user.Role,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE email = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE id = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) CreateProfile(profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, full_name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		profile.UserID, profile.FullName, profile.Phone, profile.Address, now, now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *UserRepository) GetProfile(userID int) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(address, ''), created_at, updated_at
		FROM user_profiles WHERE user_id = $1
	`

	profile := &models.UserProfile{}
	err := config.DB.QueryRow(context.Background(), query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Phone,
		&profile.Address,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *UserRepository) UpdateProfile(profile *models.UserProfile) error {
	query := `
		UPDATE user_profiles SET full_name = $1, phone = $2, address = $3, updated_at = $4
		WHERE user_id = $5
	`
	_, err := config.DB.Exec(context.Background(), query,
		profile.FullName, profile.Phone, profile.Address, time.Now(), profile.UserID)
	return err
}

func (r *UserRepository) UpdatePassword(userID int, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`
	_, err := config.DB.Exec(context.Background(), query, hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) GetUserWithProfile(userID int) (*models.UserWithProfile, error) {
	query := `
		SELECT u.id, u.email, u.role, COALESCE(p.full_name, ''), COALESCE(p.phone, ''), COALESCE(p.address, ''), u.created_at
		FROM users u
		LEFT JOIN user_profiles p ON u.id = p.user_id
		WHERE u.id = $1
	`

	user := &models.UserWithProfile{}
	err := config.DB.QueryRow(context.Background(), query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.Address,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindAllCustomers(page, limit int) ([]models.UserWithProfile, int, error) {
	offset := (page - 1) * limit

	var total int
	config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE role = 'customer'`).Scan(&total)

	query := `
		SELECT u.id, u.email, u.role, COALESCE(p.full_name, ''), COALESCE(p.phone, ''), COALESCE(p.address, ''), u.created_at
		FROM users u
		LEFT JOIN user_profiles p ON u.id = p.user_id
		WHERE u.role = 'customer'
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := config.DB.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := []models.UserWithProfile{}
	for rows.Next() {
		var u models.UserWithProfile
		rows.Scan(&u.ID, &u.Email, &u.Role, &u.FullName, &u.Phone, &u.Address, &u.CreatedAt)
		customers = append(customers, u)
	}
	return customers, total, nil
}
