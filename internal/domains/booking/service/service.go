package service

import (
	"context"
	"fmt"
	"time"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepo "lodge/internal/domains/customer/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheRoomPrefix    = "room:"

	eventBookingCreated       = "booking.created"
	eventBookingUpdated       = "booking.updated"
	eventBookingStatusChanged = "booking.status_changed"
	eventBookingDeleted       = "booking.deleted"
)

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Booking interface {
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.UpdateStatusResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	customerRepo customerRepo.Customer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafkaClient,
	}
}

// CheckAvailability reports whether the room is free for the whole
// half-open range [check_in, check_out). A booking that checks out on the
// requested check-in day does not block it.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseRange()
	if err != nil {
		return res, err
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	overlapping, err := s.repo.CountOverlapping(ctx, req.RoomID, checkIn, checkOut, req.ExcludeBookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return res, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return dto.AvailabilityResponse{
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: overlapping == 0,
	}, nil
}

// Create books a room. The availability check and the insert run in one
// transaction with the room row locked, so two concurrent requests for
// the same room and overlapping dates cannot both succeed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseRange()
	if err != nil {
		return res, err
	}

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !customerExists {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut)

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if room.Status == roomModel.StatusMaintenance {
			return failure.Conflict("room is under maintenance") // nolint:wrapcheck
		}

		overlapping, err := s.repo.CountOverlappingTx(ctx, tx, req.RoomID, checkIn, checkOut, constant.Empty)
		if err != nil {
			return err
		}

		if overlapping > 0 {
			return failure.Conflict("room is not available for the selected dates") // nolint:wrapcheck
		}

		booking.RoomNumber = room.RoomNumber
		booking.RoomType = room.RoomType
		booking.PricePerNight = room.PricePerNight

		return s.repo.InsertTx(ctx, tx, booking)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.publishEvent(ctx, eventBookingCreated, booking)
	s.invalidateBooking(ctx, constant.Empty)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update changes the stay dates or the customer on a booking that has not
// reached a terminal status. Date changes re-run the availability check
// with the booking itself excluded.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if model.IsTerminal(booking.Status) {
		return failure.Conflict("booking is already finalized") // nolint:wrapcheck
	}

	if req.CustomerID != constant.Empty {
		customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if customer exists")

			return fmt.Errorf("failed to check if customer exists: %w", err)
		}

		if !customerExists {
			return failure.NotFound("customer not found") // nolint:wrapcheck
		}
	}

	checkIn := booking.CheckIn
	checkOut := booking.CheckOut

	if req.CheckIn != constant.Empty {
		checkIn, err = timezone.Parse(constant.CalendarDateFormat, req.CheckIn)
		if err != nil {
			return failure.BadRequestFromString("invalid check_in date") // nolint:wrapcheck
		}
	}

	if req.CheckOut != constant.Empty {
		checkOut, err = timezone.Parse(constant.CalendarDateFormat, req.CheckOut)
		if err != nil {
			return failure.BadRequestFromString("invalid check_out date") // nolint:wrapcheck
		}
	}

	if !checkIn.Before(checkOut) {
		return failure.BadRequestFromString("check_in must be before check_out") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldCheckIn] = checkIn
	updatedFields[model.FieldCheckOut] = checkOut

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, tx, booking.RoomID)
		if err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		overlapping, err := s.repo.CountOverlappingTx(ctx, tx, booking.RoomID, checkIn, checkOut, booking.ID)
		if err != nil {
			return err
		}

		if overlapping > 0 {
			return failure.Conflict("room is not available for the selected dates") // nolint:wrapcheck
		}

		return s.repo.UpdateTx(ctx, tx, updatedFields, filter)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return err
	}

	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	s.publishEvent(ctx, eventBookingUpdated, booking)
	s.invalidateBooking(ctx, id)

	return nil
}

// UpdateStatus moves a booking along its lifecycle and keeps the room
// status in step: check-in occupies the room, and leaving an occupied
// room sends it to cleaning.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.UpdateStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return res, failure.Conflict(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		bookingFields := map[string]any{
			model.FieldStatus:        req.Status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, bookingFields, filter); err != nil {
			return err
		}

		roomStatus, ok := s.roomStatusFor(ctx, tx, booking, req.Status)
		if !ok {
			return nil
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomStatus,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		return s.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, err
	}

	previous := booking.Status
	booking.Status = req.Status
	s.publishEvent(ctx, eventBookingStatusChanged, booking)
	s.invalidateBooking(ctx, id)

	return dto.UpdateStatusResponse{
		ID:             id,
		PreviousStatus: previous,
		Status:         req.Status,
	}, nil
}

// roomStatusFor decides the room status side effect of a booking
// transition. Returns false when the room should be left alone.
func (s *serviceImpl) roomStatusFor(ctx context.Context, tx *sqlx.Tx, booking model.Booking, newStatus string) (string, bool) {
	switch newStatus {
	case model.StatusCheckedIn:
		return roomModel.StatusOccupied, true
	case model.StatusCheckedOut, model.StatusCancelled:
		if booking.Status != model.StatusCheckedIn {
			return "", false
		}

		room, err := s.roomRepo.LockTx(ctx, tx, booking.RoomID)
		if err != nil || room.ID == constant.Empty {
			return "", false
		}

		// The guest has left; only an occupied room needs cleaning.
		if room.Status == roomModel.StatusOccupied {
			return roomModel.StatusCleaning, true
		}
	}

	return "", false
}

// Delete removes a booking record. Only finalized bookings may be
// deleted, and front-desk staff may not delete at all.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleFrontDesk {
		return failure.Forbidden("front-desk staff cannot delete bookings") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.IsTerminal(booking.Status) {
		return failure.Conflict("only finalized bookings can be deleted") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.publishEvent(ctx, eventBookingDeleted, booking)
	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	topic := s.cfg.Kafka.Topics.BookingEvents
	if topic == constant.Empty {
		return
	}

	event := BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		CustomerID: booking.CustomerID,
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()
}
