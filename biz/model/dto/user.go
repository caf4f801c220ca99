package dto

// CreateUserReq length limits follow the users table columns so every store
// accepts the same input.
type CreateUserReq struct {
	Name     string `json:"name" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,min=4,max=128,email"`
	Password string `json:"password" validate:"required,min=7,max=72,containsany=0123456789"`
}

type FindUserReq struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"required"`
}

type UserResp struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}
