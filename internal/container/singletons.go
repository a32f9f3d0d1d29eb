package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/philgetzen/favorites-tracker-sub003/config"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

// Typed accessors for the infrastructure singletons the app registers at
// startup. They all go through the default container so router modules can
// auto-wire from them. Accessors are nil-tolerant: optional infrastructure
// (rabbit, elasticsearch) may simply never be registered.

func SetConfig(c *config.Config) { Register(Default(), c) }
func GetConfig() *config.Config {
	v, _ := ResolveOptional[*config.Config](Default())
	return v
}

func SetLogger(l *logrus.Logger) { Register(Default(), l) }
func GetLogger() *logrus.Logger {
	v, _ := ResolveOptional[*logrus.Logger](Default())
	return v
}

func SetPGPool(p *pgxpool.Pool) { Register(Default(), p) }
func GetPGPool() *pgxpool.Pool {
	v, _ := ResolveOptional[*pgxpool.Pool](Default())
	return v
}

func SetRedis(r *redis.Client) { Register(Default(), r) }
func GetRedis() *redis.Client {
	v, _ := ResolveOptional[*redis.Client](Default())
	return v
}

func SetGCS(s *storage.Client) { Register(Default(), s) }
func GetGCS() *storage.Client {
	v, _ := ResolveOptional[*storage.Client](Default())
	return v
}

func SetJWT(m *helpers.JWTManager) { Register(Default(), m) }
func GetJWT() *helpers.JWTManager {
	if v, ok := ResolveOptional[*helpers.JWTManager](Default()); ok {
		return v
	}
	return helpers.DefaultJWT()
}

func SetRabbitPub(p *helpers.RabbitPublisher) { Register(Default(), p) }
func GetRabbitPub() *helpers.RabbitPublisher {
	v, _ := ResolveOptional[*helpers.RabbitPublisher](Default())
	return v
}

func SetES(c *elasticsearch.Client) { Register(Default(), c) }
func GetES() *elasticsearch.Client {
	v, _ := ResolveOptional[*elasticsearch.Client](Default())
	return v
}
