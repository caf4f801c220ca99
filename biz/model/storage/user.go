package storage

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type UserRecord struct {
	GormModel
	UserId   string `gorm:"size:64;not null;uniqueIndex"`  // 用户唯一索引
	Name     string `gorm:"size:64;not null"`              // 用户姓名
	Email    string `gorm:"size:128;not null;uniqueIndex"` // 登录邮箱
	Password string `gorm:"size:128;not null"`             // bcrypt digest
}

func (UserRecord) TableName() string {
	return "users"
}

func (u *UserRecord) BeforeCreate(_ *gorm.DB) error {
	if u.UserId == "" {
		u.UserId = uuid.NewString()
	}
	return nil
}

// UserDocument is the mongo shape of a user; _id is assigned on insert.
type UserDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
