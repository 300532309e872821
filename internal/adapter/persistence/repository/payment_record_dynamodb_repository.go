package repository

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

const (
	defaultPaymentsTableName = "worldpay_payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

type addressItem struct {
	Line1       string `dynamodbav:"line_1"`
	Line2       string `dynamodbav:"line_2,omitempty"`
	City        string `dynamodbav:"city"`
	State       string `dynamodbav:"state,omitempty"`
	PostalCode  string `dynamodbav:"postal_code"`
	CountryCode string `dynamodbav:"country_code"`
}

// paymentDataItem never holds a full card number: only its last four digits.
type paymentDataItem struct {
	Token        string       `dynamodbav:"token,omitempty"`
	CardLast4    string       `dynamodbav:"card_last4,omitempty"`
	ExpiryMonth  string       `dynamodbav:"expiry_month,omitempty"`
	ExpiryYear   string       `dynamodbav:"expiry_year,omitempty"`
	HolderName   string       `dynamodbav:"holder_name,omitempty"`
	CVC          string       `dynamodbav:"cvc,omitempty"`
	Address      *addressItem `dynamodbav:"address,omitempty"`
	DDCSessionID string       `dynamodbav:"ddc_session_id,omitempty"`
}

type paymentRecordItem struct {
	ID            string          `dynamodbav:"id"`
	InvoiceID     string          `dynamodbav:"invoice_id,omitempty"`
	OrderCode     string          `dynamodbav:"order_code,omitempty"`
	Status        string          `dynamodbav:"status,omitempty"`
	TransactionID string          `dynamodbav:"transaction_id,omitempty"`
	Amount        int64           `dynamodbav:"amount"`
	CurrencyCode  string          `dynamodbav:"currency_code,omitempty"`
	PaymentData   paymentDataItem `dynamodbav:"payment_data"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

// PaymentRecordDynamoRepository persists payment attempts in DynamoDB.
//
// Table requirements:
//   - PK: id (string, payment id)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// Outcome and payment data are written with separate UpdateItem calls so
// neither overwrites the other.
type PaymentRecordDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoDBAPI) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: config.Getenv("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) RecordOutcome(ctx context.Context, rec entities.PaymentRecord) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       recordKey(rec.ID),
		UpdateExpression: aws.String("SET #invoice_id = :invoice_id, #order_code = :order_code, #status = :status, " +
			"#transaction_id = :transaction_id, #amount = :amount, #currency_code = :currency_code, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#invoice_id":     "invoice_id",
			"#order_code":     "order_code",
			"#status":         "status",
			"#transaction_id": "transaction_id",
			"#amount":         "amount",
			"#currency_code":  "currency_code",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice_id":     &types.AttributeValueMemberS{Value: rec.InvoiceID},
			":order_code":     &types.AttributeValueMemberS{Value: rec.OrderCode},
			":status":         &types.AttributeValueMemberS{Value: string(rec.Status)},
			":transaction_id": &types.AttributeValueMemberS{Value: rec.TransactionID},
			":amount":         &types.AttributeValueMemberN{Value: strconv.FormatInt(rec.Amount, 10)},
			":currency_code":  &types.AttributeValueMemberS{Value: rec.CurrencyCode},
			":updated_at":     &types.AttributeValueMemberS{Value: formatTime(rec.UpdatedAt)},
		},
	})
	if err != nil {
		log.Printf("[worldpay][store] record outcome failed payment_id=%s err=%v", rec.ID, err)
	}
	return err
}

func (r *PaymentRecordDynamoRepository) UpdatePaymentData(ctx context.Context, paymentID string, data entities.PaymentData) error {
	av, err := attributevalue.Marshal(toPaymentDataItem(data))
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              recordKey(paymentID),
		UpdateExpression: aws.String("SET #payment_data = :payment_data, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#payment_data": "payment_data",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment_data": av,
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return err
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            recordKey(paymentID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}
	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}
	records := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPaymentRecordItem(it))
	}
	return records, nil
}

func recordKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

func toPaymentDataItem(d entities.PaymentData) paymentDataItem {
	it := paymentDataItem{
		Token:        d.Token,
		CardLast4:    last4(d.CardNumber),
		ExpiryMonth:  d.ExpiryMonth,
		ExpiryYear:   d.ExpiryYear,
		HolderName:   d.HolderName,
		CVC:          d.CVC,
		DDCSessionID: d.DDCSessionID,
	}
	if a := d.Address; a != nil {
		it.Address = &addressItem{
			Line1: a.Line1, Line2: a.Line2, City: a.City, State: a.State,
			PostalCode: a.PostalCode, CountryCode: a.CountryCode,
		}
	}
	return it
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	d := it.PaymentData
	data := entities.PaymentData{
		Token:        d.Token,
		ExpiryMonth:  d.ExpiryMonth,
		ExpiryYear:   d.ExpiryYear,
		HolderName:   d.HolderName,
		CVC:          d.CVC,
		DDCSessionID: d.DDCSessionID,
	}
	if d.CardLast4 != "" {
		data.CardNumber = "************" + d.CardLast4
	}
	if a := d.Address; a != nil {
		data.Address = &entities.Address{
			Line1: a.Line1, Line2: a.Line2, City: a.City, State: a.State,
			PostalCode: a.PostalCode, CountryCode: a.CountryCode,
		}
	}
	return entities.PaymentRecord{
		ID:            it.ID,
		InvoiceID:     it.InvoiceID,
		OrderCode:     it.OrderCode,
		Status:        entities.OutcomeStatus(it.Status),
		TransactionID: it.TransactionID,
		Amount:        it.Amount,
		CurrencyCode:  it.CurrencyCode,
		PaymentData:   data,
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func last4(pan string) string {
	pan = strings.ReplaceAll(pan, " ", "")
	if len(pan) <= 4 {
		return pan
	}
	return pan[len(pan)-4:]
}
