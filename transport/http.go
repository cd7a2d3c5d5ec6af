package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	catalogapp "github.com/srisatyasai136/review/application/catalog"
	feedbackapp "github.com/srisatyasai136/review/application/feedback"
	userapp "github.com/srisatyasai136/review/application/user"
	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/utils/errors"
	validatorx "github.com/srisatyasai136/review/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	FeedbackApp feedbackapp.FeedbackApp
	CatalogApp  catalogapp.CatalogApp
}

func NewTransport(UserApp userapp.UserApp, FeedbackApp feedbackapp.FeedbackApp, CatalogApp catalogapp.CatalogApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     UserApp,
		FeedbackApp: FeedbackApp,
		CatalogApp:  CatalogApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc(constant.PathRegister, rh.Register).Methods(http.MethodPost)
	mux.HandleFunc(constant.PathLogin, rh.Login).Methods(http.MethodPost)
	mux.HandleFunc(constant.PathVerifyOTP, rh.VerifyOTPForm).Methods(http.MethodGet)
	mux.HandleFunc(constant.PathVerifyOTP, rh.VerifyOTP).Methods(http.MethodPost)
	mux.HandleFunc("/resend-otp", rh.ResendOTP).Methods(http.MethodPost)
	mux.HandleFunc(constant.PathForgotPassword, rh.ForgotPassword).Methods(http.MethodPost)
	mux.HandleFunc(constant.PathResetPassword, rh.ResetPasswordForm).Methods(http.MethodGet)
	mux.HandleFunc(constant.PathResetPassword, rh.ResetPassword).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/me", rh.Me).Methods(http.MethodGet)
	mux.HandleFunc(userapp.PathClasses, rh.ListActiveClasses).Methods(http.MethodGet)
	mux.HandleFunc("/classes/{id:[0-9]+}/feedback", rh.FeedbackForm).Methods(http.MethodGet)
	mux.HandleFunc("/classes/{id:[0-9]+}/feedback", rh.SubmitFeedback).Methods(http.MethodPost)
	mux.HandleFunc("/classes/{id:[0-9]+}/thank-you", rh.ThankYou).Methods(http.MethodGet)
	mux.HandleFunc("/staff/summary", rh.Summary).Methods(http.MethodGet)
	mux.HandleFunc("/staff/feedback", rh.ListFeedback).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/trainers", rh.CreateTrainer).Methods(http.MethodPost)
	internal.HandleFunc("/trainers", rh.ListTrainers).Methods(http.MethodGet)
	internal.HandleFunc("/classes", rh.CreateClass).Methods(http.MethodPost)
	internal.HandleFunc("/classes/{id:[0-9]+}/active", rh.SetClassActive).Methods(http.MethodPatch)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// decodeRequest reads a JSON body into dst and validates it.
func decodeRequest(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetDetailError(constant.ErrInvalidRequest, "malformed json body")
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetDetailError(constant.ErrInvalidRequest, validatorx.Message(err))
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetDetailError(constant.ErrInvalidRequest, "invalid id")
	}
	return id, nil
}

func queryUint(r *http.Request, key string) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetDetailError(constant.ErrInvalidRequest, key+" must be a positive integer")
	}
	return v, nil
}
