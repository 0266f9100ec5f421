package main

import (
	"context"
	"log/slog"
	"os"

	"wellclub/config"
	"wellclub/internal/delivery"
	"wellclub/internal/delivery/http"
	"wellclub/internal/delivery/http/middleware"
	"wellclub/internal/delivery/http/router/handler"
	"wellclub/internal/domain/service"
	"wellclub/internal/infra/auth"
	logs "wellclub/internal/infra/log"
	"wellclub/internal/infra/mail"
	"wellclub/internal/infra/otp"
	"wellclub/internal/infra/payment"
	"wellclub/internal/infra/persistence/postgres"
	"wellclub/internal/infra/qrcode"
	"wellclub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMembershipRepository,
			postgres.NewPlanRepository,
			postgres.NewPaymentRepository,
			postgres.NewBookingRepository,
			postgres.NewContactRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
			otp.NewOTPService,
			payment.NewRazorpayGateway,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewMembershipService,
			impl.NewRFIDService,
			impl.NewAttendanceService,
			impl.NewPlanService,
			impl.NewBookingService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewMembershipHandler,
			handler.NewRFIDHandler,
			handler.NewAttendanceHandler,
			handler.NewPlanHandler,
			handler.NewBookingHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
