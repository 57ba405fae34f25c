package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/draftstore"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/appointmentservice"
)

const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeFailure  = "failure"
)

// UseCase use case отправки собранного черновика в AppointmentService
type UseCase struct {
	draftStore        DraftStore
	schedule          ScheduleService
	appointmentClient AppointmentServiceClient
	metrics           Metrics
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftStore DraftStore,
	schedule ScheduleService,
	appointmentClient AppointmentServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftStore:        draftStore,
		schedule:          schedule,
		appointmentClient: appointmentClient,
		logger:            logger,
	}
}

// WithMetrics включает метрики отправки записей
func (uc *UseCase) WithMetrics(m Metrics) *UseCase {
	uc.metrics = m
	return uc
}

// Execute выполняет use case отправки записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%d, draft=%s", req.UserID, req.DraftID)

	// 1. Загружаем черновик
	draft, err := uc.draftStore.Get(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			uc.logger.Warn("SubmitBooking: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SubmitBooking: failed to load draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}

	// 2. Терминальная валидация по свежему снимку расписания.
	// Отказ здесь дешевый: до AppointmentService запрос не доходит.
	schedule := uc.schedule.Load(ctx)
	if err := validateDraft(draft, schedule); err != nil {
		uc.logger.Warn("SubmitBooking: draft id=%s validation failed: %v", req.DraftID, err)
		uc.observe(outcomeRejected)
		return nil, err
	}

	// 3. Разбиваем выбранные позиции по тегу kind
	serviceIDs, comboIDs, err := domain.PartitionItems(draft.Items)
	if err != nil {
		uc.logger.Error("SubmitBooking: draft id=%s has malformed items: %v", req.DraftID, err)
		uc.observe(outcomeRejected)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Собираем тело запроса по внешнему контракту
	createReq := &appointmentservice.CreateAppointmentRequest{
		CustomerID:      draft.CustomerID,
		Services:        serviceIDs,
		ComboOffers:     comboIDs,
		StaffID:         draft.StaffID,
		AppointmentDate: draft.Date.Format(domain.DateFormat),
		AppointmentTime: draft.Time.String(),
	}

	// 5. Отправляем. При отказе черновик сохраняется - пользователь
	// может поправить данные и попробовать еще раз.
	appointment, err := uc.appointmentClient.CreateAppointment(ctx, createReq)
	if err != nil {
		uc.logger.Error("SubmitBooking: draft id=%s dispatch failed: %v", req.DraftID, err)
		uc.observe(outcomeFailure)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	// 6. Успех: черновик больше не нужен
	if err := uc.draftStore.Delete(ctx, req.DraftID); err != nil {
		// Запись уже создана - ошибку удаления не превращаем в отказ
		uc.logger.Warn("SubmitBooking: failed to delete draft id=%s after success: %v", req.DraftID, err)
	}

	uc.observe(outcomeSuccess)
	if uc.metrics != nil {
		uc.metrics.DraftClosed()
	}

	uc.logger.Info("SubmitBooking: draft id=%s submitted, appointment id=%s", req.DraftID, appointment.ID)

	return &Response{
		AppointmentID:   appointment.ID,
		CustomerID:      appointment.CustomerID,
		StaffID:         appointment.StaffID,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Services:        appointment.Services,
		ComboOffers:     appointment.ComboOffers,
		Status:          appointment.Status,
	}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.DraftSubmission(outcome)
	}
}
