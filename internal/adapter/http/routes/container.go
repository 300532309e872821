package routes

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/handlers"
	"github.com/nails/driver-invoice-worldpay/internal/adapter/persistence/repository"
	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/infrastructure/database"
	"github.com/nails/driver-invoice-worldpay/internal/infrastructure/payments"
	"github.com/nails/driver-invoice-worldpay/internal/infrastructure/security"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

const (
	scaStoreDynamoDB      = "dynamodb"
	scaStoreRedis         = "redis"
	defaultScaSessionTTL  = time.Hour
	defaultPublicBaseURL  = "http://localhost:8080"
	scaReturnPathTemplate = "/v1/sca/%s/return"
)

func buildHandlers(ctx context.Context, settings config.Settings) (Handlers, error) {
	ddb, err := database.NewDynamoDBClient(ctx, database.DynamoDBOptionsFromEnv())
	if err != nil {
		return Handlers{}, err
	}
	records := repository.NewPaymentRecordDynamoRepository(ddb)

	sessions, err := scaSessionStore(ctx, ddb)
	if err != nil {
		return Handlers{}, err
	}

	gateway := payments.NewWorldpayGateway(settings)
	signer, err := payments.NewChallengeSigner(settings.ThreeDS)
	if err != nil {
		return Handlers{}, err
	}
	cipher, err := security.NewCookieCipher(settings.CookieKey)
	if err != nil {
		return Handlers{}, err
	}
	guard := usecase.NewSensitiveDataGuard(records)

	baseURL := strings.TrimRight(config.Getenv("PUBLIC_BASE_URL", defaultPublicBaseURL), "/")
	scaSettings := usecase.ScaSettings{
		ChallengeURL:        settings.ChallengeURL(),
		DDCURL:              settings.DDCURL(),
		ChallengeWindowSize: settings.ThreeDS.ChallengeWindowSize,
		ChallengePreference: settings.ThreeDS.ChallengePreference,
		SessionTTL:          config.GetenvDuration("SCA_SESSION_TTL", defaultScaSessionTTL),
		ReturnURL: func(sessionID string) string {
			return baseURL + fmt.Sprintf(scaReturnPathTemplate, sessionID)
		},
	}

	chargeUseCase := usecase.NewChargeUseCase(gateway, guard, records)
	scaUseCase := usecase.NewScaUseCase(gateway, signer, cipher, guard, sessions, records, scaSettings)
	refundUseCase := usecase.NewRefundUseCase(gateway)
	tokenUseCase := usecase.NewTokenUseCase(gateway)
	recordUseCase := usecase.NewPaymentRecordUseCase(records)

	return Handlers{
		Charge:   handlers.NewChargeHandler(chargeUseCase, scaUseCase),
		Sca:      handlers.NewScaHandler(scaUseCase),
		Refund:   handlers.NewRefundHandler(refundUseCase),
		Token:    handlers.NewTokenHandler(tokenUseCase),
		Payments: handlers.NewPaymentRecordHandler(recordUseCase),
	}, nil
}

// scaSessionStore picks the store from SCA_SESSION_STORE (dynamodb|redis).
func scaSessionStore(ctx context.Context, ddb repository.DynamoDBAPI) (interfaces.IScaSessionRepository, error) {
	kind := strings.ToLower(config.Getenv("SCA_SESSION_STORE", scaStoreDynamoDB))
	log.Printf("[worldpay][store] sca session store=%s", kind)
	switch kind {
	case scaStoreDynamoDB:
		return repository.NewScaSessionDynamoRepository(ddb), nil
	case scaStoreRedis:
		rdb, err := database.NewRedisClient(ctx, database.RedisOptionsFromEnv())
		if err != nil {
			return nil, err
		}
		return repository.NewScaSessionRedisRepository(rdb), nil
	}
	return nil, fmt.Errorf("unknown SCA_SESSION_STORE %q", kind)
}
