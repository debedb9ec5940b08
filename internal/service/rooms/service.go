package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	roomRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/room"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms/models"
)

// Service manages the room catalog. Rooms are admin-managed and never
// deleted; deactivation removes a room from future bookability only.
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService creates the rooms service.
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create registers a new room. Administrators only.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: name=%s, type=%s, capacity=%d", req.Name, req.Type, req.Capacity)

	if !domain.CanManageRooms(req.ActorRole) {
		s.logger.Warn("Create: role=%s may not manage rooms", req.ActorRole)
		return nil, ErrPermissionDenied
	}
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room := &domain.Room{
		Name:      req.Name,
		Type:      domain.RoomType(req.Type),
		Capacity:  req.Capacity,
		Building:  req.Building,
		Floor:     req.Floor,
		Equipment: req.Equipment,
		Active:    true,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateName) {
			s.logger.Warn("Create: room name %q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room id=%s created", created.ID)
	return models.FromDomainRoom(created), nil
}

// List returns the room catalog. Non-admin callers, and admins that did
// not ask otherwise, see active rooms only.
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	includeInactive := req.IncludeInactive && domain.CanManageRooms(req.ActorRole)

	rooms, err := s.roomRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: returning %d room(s), includeInactive=%t", len(rooms), includeInactive)
	return models.FromDomainRoomList(rooms), nil
}

// GetByID returns one room.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoom(room), nil
}

// Update edits a room, including activation state. Administrators only.
// Deactivating a room does not touch its existing bookings.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: room=%s", id)

	if !domain.CanManageRooms(req.ActorRole) {
		s.logger.Warn("Update: role=%s may not manage rooms", req.ActorRole)
		return nil, ErrPermissionDenied
	}

	upd, err := toDomainUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, id, upd); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Update: room id=%s not found", id)
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrDuplicateName):
			s.logger.Warn("Update: room name already exists for id=%s", id)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload room: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room id=%s updated, active=%t", id, room.Active)
	return models.FromDomainRoom(room), nil
}

func validateCreate(req *models.CreateRoomRequest) error {
	if req.Name == "" || req.Building == "" {
		return fmt.Errorf("%w: name and building are required", ErrInvalidInput)
	}
	if !domain.ValidRoomType(domain.RoomType(req.Type)) {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.Type)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}

func toDomainUpdate(req *models.UpdateRoomRequest) (domain.RoomUpdate, error) {
	upd := domain.RoomUpdate{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Building:  req.Building,
		Floor:     req.Floor,
		Equipment: req.Equipment,
		Active:    req.Active,
	}
	if req.Type != nil {
		t := domain.RoomType(*req.Type)
		if !domain.ValidRoomType(t) {
			return upd, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, *req.Type)
		}
		upd.Type = &t
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return upd, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.Name != nil && *req.Name == "" {
		return upd, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	return upd, nil
}
