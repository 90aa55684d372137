package api

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/httputil"
	"github.com/limbo/hydration/pkg/hydration"
)

const maxLimit = 50

// paginationFromQuery reads page (from 1) and limit, falling back to defaults on invalid values.
// Pages whose offset doesn't fit into int are invalid too
func (s *Server) paginationFromQuery(r *http.Request) (page, limit int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = s.pageLimit
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 || page-1 > math.MaxInt/limit {
		page = 1
	}
	return page, limit
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "name and weight in kg"
// @Success 201 {object} UserResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /users [post]
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateUserRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create user error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.CreateUser(ctx, &service.CreateUserRequest{
		Name:   req.Name,
		Weight: req.Weight,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("create user error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user data", err)
			return
		}
		logger.Error("create user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, newUserResponse(user))
	logger.Info("user created", slog.String("uid", user.ID.String()))
}

// GetUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "page number, from 1"
// @Param limit query int false "page size, up to 50"
// @Success 200 {object} GetUsersResponse
// @Router /users [get]
func (s *Server) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, limit := s.paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	users, total, err := s.userService.ListUsers(ctx, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.Error("getting users list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting users list", nil)
		return
	}
	resp := GetUsersResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Users: make([]UserResponse, 0, len(users)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, newUserResponse(u))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("users provided")
}

// GetUser godoc
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} UserResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get user error: no uid")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get user error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("get user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newUserResponse(user))
}

// DeleteUser godoc
// @Summary Delete user with his history
// @Tags users
// @Param id path string true "user id"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /users/{id} [delete]
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("user deletion error: no uid")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	err = s.userService.DeleteUser(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("user deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("user deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting user", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("user deleted")
}

// RecordIntake godoc
// @Summary Record drunk water into today
// @Tags intake
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Param body body RecordIntakeRequest true "quantity in ml"
// @Success 201 {object} IntakeResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /users/{id}/drink [post]
func (s *Server) RecordIntake(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("record intake error: no uid")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	var req RecordIntakeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("record intake error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	intake, err := s.intakeService.RecordIntake(ctx, uid, &service.RecordIntakeRequest{
		Quantity: req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("record intake error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid intake data", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("record intake error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("record intake error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording intake", nil)
		}
		return
	}
	resp := newIntakeResponse(*intake)
	resp.DayID = intake.DayID.String()
	httputil.WriteJSONResponse(w, http.StatusCreated, resp)
	logger.Info("intake recorded", slog.Int64("intake_id", intake.ID))
}

// GetSummary godoc
// @Summary Progress of a day
// @Tags intake
// @Produce json
// @Param id path string true "user id"
// @Param date query string false "YYYY-MM-DD, today by default"
// @Success 200 {object} DaySummaryResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /users/{id}/summary [get]
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get summary error: no uid")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	var date time.Time
	if param := r.URL.Query().Get("date"); param != "" {
		date, err = hydration.ParseDate(param)
		if err != nil {
			logger.Error("get summary error: invalid date", slog.String("date", param))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date parameter", errorvalues.ErrInvalidDate)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	report, err := s.intakeService.GetSummary(ctx, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("get summary error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, errorvalues.ErrDayNotFound):
			logger.Error("get summary error: day not in history")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "day doesn't exist in user's history", nil)
		default:
			logger.Error("get summary error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting summary", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newDaySummaryResponse(report))
	logger.Info("summary provided")
}

// GetHistory godoc
// @Summary User's days in date order
// @Tags intake
// @Produce json
// @Param id path string true "user id"
// @Param page query int false "page number, from 1"
// @Param limit query int false "page size, up to 50"
// @Success 200 {object} GetHistoryResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /users/{id}/history [get]
func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get history error: no uid")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	page, limit := s.paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	history, err := s.intakeService.GetHistory(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get history error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("get history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting history", nil)
		return
	}
	resp := GetHistoryResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Total:  history.Total,
		Days:   make([]DaySummaryResponse, 0, len(history.Days)),
	}
	for i := range history.Days {
		resp.Days = append(resp.Days, newDaySummaryResponse(&history.Days[i]))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("history provided")
}
