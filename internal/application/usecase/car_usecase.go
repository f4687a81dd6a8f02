package usecase

import (
	"time"

	"github.com/haikalarif/BCR-API-chapter08/internal/application/dto"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/repository"
)

// FleetReportGenerator es el puerto de generación del reporte PDF de la flota.
// Lo implementa pdf.FleetReportGenerator.
type FleetReportGenerator interface {
	Generate(cars []*entity.Car) ([]byte, error)
}

// CarUseCase casos de uso CRUD para el catálogo de carros.
type CarUseCase struct {
	repo   repository.CarRepository
	report FleetReportGenerator
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(repo repository.CarRepository, report FleetReportGenerator) *CarUseCase {
	return &CarUseCase{repo: repo, report: report}
}

// Create crea un carro. IsCurrentlyRented siempre inicia en false.
func (uc *CarUseCase) Create(in dto.CreateCarRequest) (*dto.CarResponse, error) {
	now := time.Now()
	car := &entity.Car{
		Name:              in.Name,
		Price:             in.Price,
		Size:              in.Size,
		Image:             in.Image,
		IsCurrentlyRented: false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(car); err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// GetByID obtiene un carro por ID. Devuelve nil sin error si no existe.
func (uc *CarUseCase) GetByID(id int64) (*dto.CarResponse, error) {
	car, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, nil
	}
	return toCarResponse(car), nil
}

// List lista el catálogo con paginación page/pageSize y metadatos
// {page, pageCount, pageSize, count}.
func (uc *CarUseCase) List(page dto.PageRequest) (*dto.CarListResponse, error) {
	page.DefaultPage()
	count, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	cars := make([]dto.CarResponse, 0, len(list))
	for _, c := range list {
		cars = append(cars, *toCarResponse(c))
	}
	pageCount := count / page.PageSize
	if count%page.PageSize != 0 {
		pageCount++
	}
	return &dto.CarListResponse{
		Cars: cars,
		Meta: dto.PaginationResponse{
			Page:      page.Page,
			PageCount: pageCount,
			PageSize:  page.PageSize,
			Count:     count,
		},
	}, nil
}

// Update actualiza los campos presentes. Devuelve nil sin error si el carro no existe.
func (uc *CarUseCase) Update(id int64, in dto.UpdateCarRequest) (*dto.CarResponse, error) {
	car, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, nil
	}
	if in.Name != nil {
		car.Name = *in.Name
	}
	if in.Price != nil {
		car.Price = *in.Price
	}
	if in.Size != nil {
		car.Size = *in.Size
	}
	if in.Image != nil {
		car.Image = *in.Image
	}
	if in.IsCurrentlyRented != nil {
		car.IsCurrentlyRented = *in.IsCurrentlyRented
	}
	car.UpdatedAt = time.Now()
	if err := uc.repo.Update(car); err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// Delete elimina un carro por ID.
func (uc *CarUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// FleetReport genera el PDF con el catálogo completo.
func (uc *CarUseCase) FleetReport() ([]byte, error) {
	count, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		count = 1
	}
	cars, err := uc.repo.List(count, 0)
	if err != nil {
		return nil, err
	}
	return uc.report.Generate(cars)
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	return &dto.CarResponse{
		ID:                c.ID,
		Name:              c.Name,
		Price:             c.Price,
		Size:              c.Size,
		Image:             c.Image,
		IsCurrentlyRented: c.IsCurrentlyRented,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
