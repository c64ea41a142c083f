package services

import (
	"strings"

	"pickmeup/internal/models"
	"pickmeup/internal/repositories"
)

// UserUpdate is the generic self-service user patch. Email and role are
// deliberately not part of it: the generic update endpoint must not allow
// privilege escalation or identity changes. Nil pointers mean "field absent".
type UserUpdate struct {
	Name           *string                   `json:"name"`
	Phone          *string                   `json:"phone"`
	Addresses      *[]models.DeliveryAddress `json:"addresses"`
	PaymentMethods *[]models.PaymentMethod   `json:"paymentMethods"`
}

// UserService handles business logic related to user profiles.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a new user. Emails are unique and stored lowercase; the
// role defaults to customer.
func (s *UserService) CreateUser(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if !models.IsValidRole(user.Role) {
		return invalidInput("Invalid role: %s", user.Role)
	}
	if existing, err := s.repo.GetByEmail(user.Email); err == nil && existing != nil {
		return repositories.ErrDuplicate
	}
	return s.repo.Create(user)
}

// UpdateUser applies the generic self-service patch to an existing user and
// returns the updated record.
func (s *UserService) UpdateUser(id string, upd UserUpdate) (*models.User, error) {
	if upd.Name == nil && upd.Phone == nil && upd.Addresses == nil && upd.PaymentMethods == nil {
		return nil, invalidInput("No update data provided or only disallowed fields were sent.")
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Addresses != nil {
		user.Addresses = *upd.Addresses
	}
	if upd.PaymentMethods != nil {
		user.PaymentMethods = *upd.PaymentMethods
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user by their ID. Orders referencing the user keep
// their reference.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
