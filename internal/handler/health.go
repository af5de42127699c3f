package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Pinger checks one infrastructure dependency within the given context.
type Pinger func(ctx context.Context) error

// Health reports postgres and redis reachability with the API envelope:
// 200 {success:true, data:{...}} cuando todo responde, 503 si algo cae.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return healthHandler(pingPostgres(db), pingRedis(rdb))
}

func pingPostgres(db *gorm.DB) Pinger {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func pingRedis(rdb *redis.Client) Pinger {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}

func healthHandler(pingDB, pingCache Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		estados := gin.H{"postgres": "conectado", "redis": "conectado"}
		sano := true
		if pingDB(ctx) != nil {
			estados["postgres"] = "error"
			sano = false
		}
		if pingCache(ctx) != nil {
			estados["redis"] = "error"
			sano = false
		}

		if !sano {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"message": "Servicio degradado",
				"data":    estados,
			})
			return
		}
		respond(c, http.StatusOK, estados)
	}
}
