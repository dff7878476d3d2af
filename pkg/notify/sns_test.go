package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSNSNotifierSendSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	notifier := &snsNotifier{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::failures",
		client:   client,
		log:      noopLogger{},
	}

	err := notifier.Send(context.Background(), Event{
		EndpointID: "items",
		Kind:       "network_error",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::failures" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["endpoint_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "items" {
		t.Fatalf("endpoint_id attribute missing or wrong: %#v", attr)
	}
}

func TestSNSNotifierSendError(t *testing.T) {
	client := &fakeSNSClient{err: errors.New("boom")}
	notifier := &snsNotifier{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::failures",
		client:   client,
		log:      noopLogger{},
	}

	if err := notifier.Send(context.Background(), Event{EndpointID: "items"}); err == nil {
		t.Fatalf("expected error from Send")
	}
}
