package main

import (
	"IntakeKiosk/config"
	"IntakeKiosk/jobs"
	"IntakeKiosk/migrations"
	"IntakeKiosk/routes"
	"IntakeKiosk/services"
	"IntakeKiosk/store"
	"IntakeKiosk/store/memstore"
	"IntakeKiosk/wizard"
	"log"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}
	cfg := config.Load()

	stores := buildStores(cfg)
	svc := services.New(stores, cfg.SourceTag)
	sweeper := sessionSweeper(stores)
	registry := wizard.NewRegistry(svc.Options, svc.Patients, svc.Patients, wizard.Settings{
		CollectAdAttribution: cfg.CollectAdAttribution,
		GreetingDelay:        cfg.GreetingDelay,
	}, cfg.SessionTTL)

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		CacheEnabled:     defaultopts.CacheEnabled,
		MongoEnabled:     defaultopts.MongoEnabled && cfg.Store == config.StoreMongo,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			jobs.SeedAdmin(svc.Auth)
			if _, err := jobs.StartScheduler(cfg.SummaryCron, svc.Dashboard, registry, sweeper); err != nil {
				log.Println("Error starting scheduler: ", err)
			}
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r, svc, registry, cfg.RequireAuth)
		},

		MigrationEnabled: !isTest && cfg.RunMigrations && cfg.Store == config.StoreMongo,
		MigrationHandler: func() {
			if isTest {
				return
			}
			migrations.Run()
		},
	}
	startServer(options)
}

// sessionSweeper is nil when Redis expires the admin sessions itself.
func sessionSweeper(stores services.Stores) jobs.SessionSweeper {
	if sessions, ok := stores.Sessions.(*memstore.Sessions); ok {
		return sessions
	}
	return nil
}

/*
* Mongo repositories unless INTAKE_STORE=memory
* Admin sessions go to Redis when an address is configured
* If Redis is unreachable sessions fall back to memory
 */
func buildStores(cfg config.Config) services.Stores {
	stores := services.Stores{Sessions: memstore.NewSessions(cfg.AdminSessionTTL)}
	if cfg.Store == config.StoreMemory {
		log.Println("Using in-memory store")
		stores.Patients = memstore.NewPatients()
		stores.Options = memstore.NewOptions()
		stores.Admins = memstore.NewAdmins()
	} else {
		stores.Patients = store.NewPatientRepository()
		stores.Options = store.NewOptionRepository()
		stores.Admins = store.NewAdminRepository()
	}

	if cfg.RedisAddr == "" {
		return stores
	}
	rdb, err := store.NewRedis(store.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Println("Error connecting to redis, keeping sessions in memory: ", err)
		return stores
	}
	stores.Sessions = store.NewRedisSessionCache(rdb, cfg.AdminSessionTTL)
	return stores
}
