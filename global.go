package resmap

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"resmap/internal/api/mapping"
)

var (
	DB      *gorm.DB
	Logger  zerolog.Logger
	Redis   *redis.Client
	Classes *mapping.ClassMapper
)
