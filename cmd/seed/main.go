// seed puebla la base de datos para desarrollo: aplica migraciones, crea el
// usuario administrador si no existe y carga el catálogo de carros desde un
// CSV (columnas: name,price,size,image). Los CSV exportados desde hojas de
// cálculo suelen venir en Windows-1252, por lo que se decodifican a UTF-8.
//
// Uso: go run ./cmd/seed [ruta/cars.csv]
// Sin argumento carga un catálogo mínimo de ejemplo.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
	"github.com/haikalarif/BCR-API-chapter08/internal/infrastructure/postgres"
	"github.com/haikalarif/BCR-API-chapter08/pkg/config"
	"github.com/haikalarif/BCR-API-chapter08/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("cargar configuración: %v", err)
	}

	if err := postgres.Migrate(cfg.DB); err != nil {
		fatalf("migraciones: %v", err)
	}
	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fatalf("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	carRepo := postgres.NewCarRepository(pool)

	// Usuario administrador inicial (idempotente)
	adminRole, err := roleRepo.GetByName(entity.RoleAdmin)
	if err != nil {
		fatalf("buscar rol ADMIN: %v", err)
	}
	if adminRole == nil {
		fatalf("el rol ADMIN no existe; las migraciones no se aplicaron")
	}
	adminEmail := strings.ToLower(envOr("SEED_ADMIN_EMAIL", "admin@gmail.com"))
	existing, err := userRepo.FindByEmail(adminEmail)
	if err != nil {
		fatalf("buscar admin: %v", err)
	}
	if existing == nil {
		hasher := password.NewHasher(cfg.Hash.BcryptCost)
		hash, err := hasher.Hash(envOr("SEED_ADMIN_PASSWORD", "12345678"))
		if err != nil {
			fatalf("hashear password de admin: %v", err)
		}
		now := time.Now()
		admin := &entity.User{
			Name:         "Admin",
			Email:        adminEmail,
			Image:        "admin.jpg",
			PasswordHash: hash,
			RoleID:       adminRole.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			fatalf("crear admin: %v", err)
		}
		fmt.Printf("admin creado: %s (id %d)\n", adminEmail, admin.ID)
	}

	cars, err := loadCars()
	if err != nil {
		fatalf("cargar catálogo: %v", err)
	}
	for _, car := range cars {
		if err := carRepo.Create(car); err != nil {
			fatalf("crear carro %q: %v", car.Name, err)
		}
	}
	fmt.Printf("catálogo cargado: %d carros\n", len(cars))
}

// loadCars lee el CSV indicado en os.Args[1] o devuelve el catálogo de ejemplo.
func loadCars() ([]*entity.Car, error) {
	if len(os.Args) < 2 {
		return sampleCars(), nil
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCarsCSV(f)
}

// parseCarsCSV decodifica el CSV desde Windows-1252 y lo convierte en carros.
func parseCarsCSV(r io.Reader) ([]*entity.Car, error) {
	reader := csv.NewReader(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
	reader.FieldsPerRecord = 4

	var cars []*entity.Car
	now := time.Now()
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		// Permitir fila de encabezado
		if line == 1 && strings.EqualFold(record[0], "name") {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, record[1])
		}
		cars = append(cars, &entity.Car{
			Name:      strings.TrimSpace(record[0]),
			Price:     price,
			Size:      strings.ToLower(strings.TrimSpace(record[2])),
			Image:     strings.TrimSpace(record[3]),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return cars, nil
}

func sampleCars() []*entity.Car {
	now := time.Now()
	mk := func(name, price, size, image string) *entity.Car {
		return &entity.Car{
			Name:      name,
			Price:     decimal.RequireFromString(price),
			Size:      size,
			Image:     image,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return []*entity.Car{
		mk("Toyota Innova Reborn 2022", "700000", entity.CarSizeLarge, "innova.jpg"),
		mk("Kijang Innova Reborn", "750000", entity.CarSizeLarge, "innova.jpg"),
		mk("Honda Brio", "350000", entity.CarSizeSmall, "brio.jpg"),
		mk("Toyota Avanza", "500000", entity.CarSizeMedium, "avanza.jpg"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
