package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillup-platform/skillup-api/internal/handlers"
	"github.com/skillup-platform/skillup-api/internal/services"
	"github.com/skillup-platform/skillup-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("JWT_SECRET is NOT SET.")
	}
	if os.Getenv("STRIPE_SECRET_KEY") == "" {
		log.Println("STRIPE_SECRET_KEY is NOT SET.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(os.Getenv("MONGO_DATABASE"))
	log.Println("Successfully connected to MongoDB!")

	// --- Services and Handlers ---
	paymentSvc := services.NewPaymentService(os.Getenv("STRIPE_SECRET_KEY"))
	h := handlers.NewHandler(store.NewMongoStore(db), paymentSvc)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:5174",
			"http://localhost:5175",
			"https://skillup-57533.web.app",
			"https://skillup-57533.firebaseapp.com",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h.SetupRoutes(r)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("SkillUp is running on port %s", port)
	r.Run(":" + port)
}
