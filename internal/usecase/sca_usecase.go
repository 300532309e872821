package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

var (
	ErrContinuationMismatch         = errors.New("payment source does not match the sca continuation")
	ErrInvalidMD                    = errors.New("invalid MD")
	ErrScaSessionNotFound           = errors.New("sca session not found")
	ErrScaSessionAlreadyInitiated   = errors.New("sca session already initiated")
	ErrScaSessionNotInitiated       = errors.New("sca session has not been initiated")
	ErrScaSessionStoreNotConfigured = errors.New("sca session store not configured")
)

// Browser form fields of the challenge redirect.
const (
	FieldJWT = "JWT"
	FieldMD  = "MD"
)

// ScaSettings carries the environment-resolved 3DS parameters.
type ScaSettings struct {
	ChallengeURL        string
	DDCURL              string
	ChallengeWindowSize string
	ChallengePreference string
	SessionTTL          time.Duration
	// ReturnURL builds the challenge return address for a stored session.
	ReturnURL func(sessionID string) string
}

// IScaUseCase is the two-phase authenticated charge, plus the stored-session
// variants the HTTP service uses to carry state across the redirect.
type IScaUseCase interface {
	DeviceDataCollection(ctx context.Context, bin string) (entities.DeviceDataCollection, error)
	InitialPayment(ctx context.Context, cont *entities.ScaContinuation, source *entities.PaymentSource, order entities.OrderContext) (entities.Outcome, error)
	SecondPayment(ctx context.Context, ret entities.ScaReturn) (entities.Outcome, error)

	StartSession(ctx context.Context, cont entities.ScaContinuation, source *entities.PaymentSource, order entities.OrderContext) (entities.ScaSession, error)
	InitialPaymentForSession(ctx context.Context, sessionID string) (entities.Outcome, error)
	CompleteSession(ctx context.Context, sessionID, transactionID, responseCode, md string) (entities.Outcome, error)
}

type ScaUseCase struct {
	gateway  interfaces.IPaymentGateway
	signer   interfaces.IChallengeSigner
	cipher   interfaces.ICookieCipher
	guard    ISensitiveDataGuard
	sessions interfaces.IScaSessionRepository
	records  interfaces.IPaymentRecordRepository
	settings ScaSettings
	now      func() time.Time
}

var _ IScaUseCase = (*ScaUseCase)(nil)

func NewScaUseCase(
	gateway interfaces.IPaymentGateway,
	signer interfaces.IChallengeSigner,
	cipher interfaces.ICookieCipher,
	guard ISensitiveDataGuard,
	sessions interfaces.IScaSessionRepository,
	records interfaces.IPaymentRecordRepository,
	settings ScaSettings,
) *ScaUseCase {
	if guard == nil {
		guard = NewSensitiveDataGuard(records)
	}
	return &ScaUseCase{
		gateway:  gateway,
		signer:   signer,
		cipher:   cipher,
		guard:    guard,
		sessions: sessions,
		records:  records,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// DeviceDataCollection returns what the caller needs to render its device
// data collection form.
func (u *ScaUseCase) DeviceDataCollection(ctx context.Context, bin string) (entities.DeviceDataCollection, error) {
	token, err := u.signer.DDCJWT()
	if err != nil {
		log.Printf("[worldpay][sca] ddc jwt failed err=%v", err)
		return entities.DeviceDataCollection{}, err
	}
	return entities.DeviceDataCollection{URL: u.settings.DDCURL, JWT: token, BIN: bin}, nil
}

// InitialPayment sends the 3DS charge. A challengeRequired reply becomes a
// Redirect outcome carrying the signed JWT and the encrypted machine cookie.
// The continuation's CVC is masked once the round trip is over.
func (u *ScaUseCase) InitialPayment(ctx context.Context, cont *entities.ScaContinuation, source *entities.PaymentSource, order entities.OrderContext) (entities.Outcome, error) {
	ensureOrderCode(&order)
	return u.initialPayment(ctx, cont, source, order, order.OrderCode)
}

// initialPayment binds the MD it issues to binding, which phase 2 must
// present again: the order code, or the session id for stored sessions.
func (u *ScaUseCase) initialPayment(ctx context.Context, cont *entities.ScaContinuation, source *entities.PaymentSource, order entities.OrderContext, binding string) (entities.Outcome, error) {
	if cont == nil {
		return entities.Outcome{}, ErrContinuationMismatch
	}
	if source != nil && source.ID != cont.SourceID {
		log.Printf("[worldpay][sca] source mismatch payment_id=%s", cont.PaymentID)
		return entities.Outcome{}, ErrContinuationMismatch
	}
	ensureOrderCode(&order)
	log.Printf("[worldpay][sca] initial payment start payment_id=%s order_code=%s", cont.PaymentID, order.OrderCode)

	out, err := u.initial(ctx, cont.ChargeRequest(source, order), binding)
	obfuscate(ctx, u.guard, cont.PaymentID, &cont.PaymentData)
	if err != nil {
		return entities.Outcome{}, err
	}
	log.Printf("[worldpay][sca] initial payment done payment_id=%s status=%s", cont.PaymentID, out.Status)
	return out, nil
}

func (u *ScaUseCase) initial(ctx context.Context, req entities.ChargeRequest, binding string) (entities.Outcome, error) {
	if u.gateway == nil {
		return entities.Outcome{}, ErrGatewayNotConfigured
	}
	cred, err := entities.ResolveCardCredential(req.Source, req.PaymentData)
	if err != nil {
		return failure(err)
	}
	doc := threeDSChargeDocument(req, cred, u.settings.ChallengeWindowSize, u.settings.ChallengePreference)
	reply, err := u.gateway.Send(ctx, doc, req.CurrencyCode, req.CustomerPresent, "")
	if err != nil {
		log.Printf("[worldpay][sca] send failed order_code=%s err=%v", req.Order.OrderCode, err)
		return failure(err)
	}
	if node, ok := xmldoc.TryFind(reply, pathChallengeDetails); ok {
		return u.redirect(reply, node, req.Order, binding)
	}
	return interpretLastEvent(reply, req.Order.OrderCode), nil
}

func (u *ScaUseCase) redirect(reply *xmldoc.Document, node *xmldoc.Node, order entities.OrderContext, binding string) (entities.Outcome, error) {
	details := entities.ChallengeDetails{
		ACSURL:        childText(node, "acsURL"),
		Payload:       childText(node, "payload"),
		TransactionID: childText(node, "transactionId3DS"),
		Version:       childText(node, "threeDSVersion"),
	}
	if details.ACSURL == "" || details.Payload == "" {
		return failure(&entities.StructuralError{Path: pathChallengeDetails, Err: errors.New("acsURL or payload empty")})
	}
	token, err := u.signer.ChallengeJWT(details, order.ReturnURL)
	if err != nil {
		return failure(fmt.Errorf("sign challenge: %w", err))
	}
	cookie := reply.Attr(interfaces.MachineCookieAttr)
	if cookie == "" {
		log.Printf("[worldpay][sca] challenge without machine cookie order_code=%s", order.OrderCode)
	}
	md, err := u.cipher.Encrypt(sealMD(binding, cookie))
	if err != nil {
		return failure(fmt.Errorf("encrypt machine cookie: %w", err))
	}
	log.Printf("[worldpay][sca] challenge required order_code=%s version=%s", order.OrderCode, details.Version)
	return entities.Outcome{
		Status:        entities.OutcomeRedirect,
		TransactionID: order.OrderCode,
		Redirect: &entities.RedirectChallenge{
			URL:    u.settings.ChallengeURL,
			Fields: map[string]string{FieldJWT: token, FieldMD: md},
		},
	}, nil
}

// SecondPayment confirms a completed challenge on the same backend partition
// as phase 1, using the machine cookie recovered from MD.
func (u *ScaUseCase) SecondPayment(ctx context.Context, ret entities.ScaReturn) (entities.Outcome, error) {
	return u.secondPayment(ctx, ret, ret.OrderCode)
}

func (u *ScaUseCase) secondPayment(ctx context.Context, ret entities.ScaReturn, binding string) (entities.Outcome, error) {
	log.Printf("[worldpay][sca] second payment start order_code=%s transaction_id=%s", ret.OrderCode, ret.TransactionID)
	if u.gateway == nil {
		return entities.Outcome{}, ErrGatewayNotConfigured
	}
	if ret.OrderCode == "" {
		return failure(fmt.Errorf("%w: order code missing", entities.ErrInvalidRequest))
	}
	if ret.MD == "" {
		return failure(ErrInvalidMD)
	}
	plain, err := u.cipher.Decrypt(ret.MD)
	if err != nil {
		log.Printf("[worldpay][sca] md decrypt failed order_code=%s", ret.OrderCode)
		return failure(fmt.Errorf("%w: %v", ErrInvalidMD, err))
	}
	cookie, ok := openMD(binding, plain)
	if !ok {
		log.Printf("[worldpay][sca] md issued for another order order_code=%s", ret.OrderCode)
		return failure(ErrInvalidMD)
	}

	doc := completedAuthenticationDocument(ret.OrderCode, ret.SessionID)
	reply, err := u.gateway.Send(ctx, doc, ret.CurrencyCode, ret.CustomerPresent, cookie)
	if err != nil {
		log.Printf("[worldpay][sca] second payment send failed order_code=%s err=%v", ret.OrderCode, err)
		return failure(err)
	}
	out := interpretLastEvent(reply, ret.OrderCode)
	log.Printf("[worldpay][sca] second payment done order_code=%s status=%s", ret.OrderCode, out.Status)
	return out, nil
}

// MD plaintext is "<binding>|<machine cookie>".
func sealMD(binding, cookie string) []byte {
	return []byte(binding + "|" + cookie)
}

func openMD(binding string, plain []byte) (string, bool) {
	return strings.CutPrefix(string(plain), binding+"|")
}

// StartSession stores a continuation so phase 1 and phase 2 can be driven by
// separate HTTP requests. Payment data is stored encrypted.
func (u *ScaUseCase) StartSession(ctx context.Context, cont entities.ScaContinuation, source *entities.PaymentSource, order entities.OrderContext) (entities.ScaSession, error) {
	if u.sessions == nil || u.cipher == nil {
		return entities.ScaSession{}, ErrScaSessionStoreNotConfigured
	}
	digest, err := cont.Digest()
	if err != nil {
		return entities.ScaSession{}, err
	}
	sealed, err := u.sealPaymentData(cont.PaymentData)
	if err != nil {
		return entities.ScaSession{}, err
	}
	cont.PaymentData = entities.PaymentData{}
	now := u.now()
	s := entities.ScaSession{
		ID:                uuid.NewString(),
		Continuation:      cont,
		Digest:            digest,
		SealedPaymentData: sealed,
		Source:            source,
		Order:             order,
		CreatedAt:         now,
		ExpiresAt:         now.Add(u.settings.SessionTTL),
	}
	ensureOrderCode(&s.Order)
	if s.Order.ReturnURL == "" && u.settings.ReturnURL != nil {
		s.Order.ReturnURL = u.settings.ReturnURL(s.ID)
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		log.Printf("[worldpay][store] save sca session failed payment_id=%s err=%v", cont.PaymentID, err)
		return entities.ScaSession{}, err
	}
	log.Printf("[worldpay][sca] session started session_id=%s payment_id=%s order_code=%s", s.ID, cont.PaymentID, s.Order.OrderCode)
	return s, nil
}

// InitialPaymentForSession runs phase 1 for a stored session. The session is
// claimed before anything is sent, so phase 1 runs at most once. A redirect
// keeps the session, reduced to redacted payment data, for phase 2; any other
// result ends it.
func (u *ScaUseCase) InitialPaymentForSession(ctx context.Context, sessionID string) (entities.Outcome, error) {
	if u.sessions == nil || u.cipher == nil {
		return entities.Outcome{}, ErrScaSessionStoreNotConfigured
	}
	s, claimed, err := u.sessions.Claim(ctx, sessionID)
	if err != nil {
		return entities.Outcome{}, err
	}
	if s.ID == "" {
		return entities.Outcome{}, ErrScaSessionNotFound
	}
	if !claimed {
		log.Printf("[worldpay][sca] session already claimed session_id=%s", sessionID)
		return entities.Outcome{}, ErrScaSessionAlreadyInitiated
	}
	if err := u.openSession(&s); err != nil {
		u.discardSession(ctx, sessionID)
		return entities.Outcome{}, err
	}

	out, err := u.initialPayment(ctx, &s.Continuation, s.Source, s.Order, s.ID)
	if err != nil {
		u.discardSession(ctx, sessionID)
		return entities.Outcome{}, err
	}
	recordOutcome(ctx, u.records, sessionRecord(s, out))

	if !out.IsRedirect() {
		u.discardSession(ctx, sessionID)
		return out, nil
	}
	s.Initiated = true
	s.SealedPaymentData = ""
	s.Continuation.PaymentData = s.Continuation.PaymentData.Redacted()
	if s.Digest, err = s.Continuation.Digest(); err != nil {
		return entities.Outcome{}, err
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		log.Printf("[worldpay][store] update sca session failed session_id=%s err=%v", sessionID, err)
		return entities.Outcome{}, err
	}
	return out, nil
}

// CompleteSession consumes a stored session with the fields the browser
// posted back from the challenge. Only a session whose phase 1 ended in a
// redirect can complete, and only with the MD issued for it.
func (u *ScaUseCase) CompleteSession(ctx context.Context, sessionID, transactionID, responseCode, md string) (entities.Outcome, error) {
	if u.sessions == nil || u.cipher == nil {
		return entities.Outcome{}, ErrScaSessionStoreNotConfigured
	}
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.Outcome{}, err
	}
	if s.ID == "" {
		return entities.Outcome{}, ErrScaSessionNotFound
	}
	if !s.Initiated || s.SealedPaymentData != "" {
		log.Printf("[worldpay][sca] return before phase 1 session_id=%s", sessionID)
		return entities.Outcome{}, ErrScaSessionNotInitiated
	}
	if s, err = u.sessions.Take(ctx, sessionID); err != nil {
		return entities.Outcome{}, err
	}
	if s.ID == "" {
		return entities.Outcome{}, ErrScaSessionNotFound
	}
	out, err := u.secondPayment(ctx, entities.ScaReturn{
		OrderCode:       s.Order.OrderCode,
		SessionID:       s.Order.SessionID,
		CurrencyCode:    s.Continuation.CurrencyCode,
		CustomerPresent: s.Continuation.CustomerPresent,
		TransactionID:   transactionID,
		ResponseCode:    responseCode,
		MD:              md,
	}, s.ID)
	if err != nil {
		return entities.Outcome{}, err
	}
	recordOutcome(ctx, u.records, sessionRecord(s, out))
	return out, nil
}

// openSession restores sealed payment data and checks the continuation
// against the digest taken when the session started.
func (u *ScaUseCase) openSession(s *entities.ScaSession) error {
	if s.SealedPaymentData != "" {
		data, err := u.openPaymentData(s.SealedPaymentData)
		if err != nil {
			log.Printf("[worldpay][sca] sealed payment data unreadable session_id=%s", s.ID)
			return fmt.Errorf("%w: %v", entities.ErrContinuationTampered, err)
		}
		s.Continuation.PaymentData = data
		s.SealedPaymentData = ""
	}
	if err := s.Continuation.Verify(s.Digest); err != nil {
		log.Printf("[worldpay][sca] continuation digest mismatch session_id=%s", s.ID)
		return err
	}
	return nil
}

func (u *ScaUseCase) sealPaymentData(data entities.PaymentData) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode payment data: %w", err)
	}
	sealed, err := u.cipher.Encrypt(b)
	if err != nil {
		return "", fmt.Errorf("seal payment data: %w", err)
	}
	return sealed, nil
}

func (u *ScaUseCase) openPaymentData(sealed string) (entities.PaymentData, error) {
	b, err := u.cipher.Decrypt(sealed)
	if err != nil {
		return entities.PaymentData{}, err
	}
	var data entities.PaymentData
	if err := json.Unmarshal(b, &data); err != nil {
		return entities.PaymentData{}, fmt.Errorf("decode payment data: %w", err)
	}
	return data, nil
}

func (u *ScaUseCase) discardSession(ctx context.Context, sessionID string) {
	if _, err := u.sessions.Take(ctx, sessionID); err != nil {
		log.Printf("[worldpay][store] discard sca session failed session_id=%s err=%v", sessionID, err)
	}
}

func sessionRecord(s entities.ScaSession, out entities.Outcome) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:            s.Continuation.PaymentID,
		InvoiceID:     s.Continuation.InvoiceID,
		OrderCode:     s.Order.OrderCode,
		Status:        out.Status,
		TransactionID: out.TransactionID,
		Amount:        s.Continuation.Amount,
		CurrencyCode:  s.Continuation.CurrencyCode,
	}
}
