package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSQSNotifierSendSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	notifier := &sqsNotifier{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := notifier.Send(context.Background(), Event{
		EndpointID: "items",
		Kind:       "http_error",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["endpoint_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "items" {
		t.Fatalf("endpoint_id attribute missing or wrong: %#v", attr)
	}
	if attr.DataType == nil || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("DataType should be String, got %#v", attr.DataType)
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"endpoint_id":"items"`) {
		t.Fatalf("MessageBody missing endpoint_id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSNotifierSendError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	notifier := &sqsNotifier{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	if err := notifier.Send(context.Background(), Event{EndpointID: "items"}); err == nil {
		t.Fatalf("expected error from Send")
	}
}
