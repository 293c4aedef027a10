package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"os-scheduler/config"
	"os-scheduler/internal/bankers"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	LongestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	HighestResponseRatioNext(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Bankers(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) LongestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.LJF)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SRTF)
}

func (s *SchedulerHandlerImpl) HighestResponseRatioNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.HRRN)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MLFQ)
}

// AllAlgorithms runs every scheduler on the same input. Priority is skipped,
// not failed, when the processes carry no priorities.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if err := schedulers.ValidateProcesses(schedulers.FCFS, request.Processes); err != nil {
		return s.fail(ctx, err)
	}

	response := responses.AllAlgorithmsResponse{
		Schedules: make(map[schedulers.Algorithm]responses.ScheduleResponse),
	}
	for _, alg := range schedulers.Algorithms() {
		schedule, err := schedulers.Simulate(alg, request.Processes, request.Options(s.config))
		if err != nil {
			if response.Skipped == nil {
				response.Skipped = make(map[schedulers.Algorithm]string)
			}
			response.Skipped[alg] = err.Error()
			continue
		}
		response.Schedules[alg] = responses.ScheduleResponse{Algorithm: schedulers.Details(alg), Schedule: schedule}
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Bankers(ctx *fiber.Ctx) error {
	var request requests.BankersRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if err := bankers.Validate(request.Processes, request.Available); err != nil {
		return s.fail(ctx, err)
	}

	result := bankers.Check(request.Processes, request.Available)
	return ctx.JSON(responses.BankersResponse{
		Algorithm: schedulers.Details(schedulers.Bankers),
		Safe:      result.Safe(),
		Result:    result,
	})
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(schedulers.Catalogue())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if err := schedulers.ValidateProcesses(alg, request.Processes); err != nil {
		return s.fail(ctx, err)
	}

	schedule, err := schedulers.Simulate(alg, request.Processes, request.Options(s.config))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(responses.ScheduleResponse{Algorithm: schedulers.Details(alg), Schedule: schedule})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedulers.ErrEmptyInput),
		errors.Is(err, schedulers.ErrMissingPriority),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrInvalidProcess),
		errors.Is(err, schedulers.ErrUnknownAlgorithm),
		errors.Is(err, bankers.ErrInvalidInput):
		logrus.Warnf("%s %s: %v", ctx.Method(), ctx.Path(), err)
		return badRequest(ctx, err.Error())
	default:
		logrus.Errorf("%s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not proccess request"})
	}
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}
