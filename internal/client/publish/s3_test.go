package publish

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() S3Config {
	return S3Config{
		Bucket:   "guestkeeper",
		Region:   "us-east-1",
		Endpoint: "http://127.0.0.1:9000",
		User:     "minioadmin",
		Password: "minioadmin",
	}
}

type captured struct {
	region   string
	endpoint string
	put      *s3.PutObjectInput
	body     string
	get      *s3.GetObjectInput
}

func stubAWS(t *testing.T, putErr, presignErr error) *captured {
	t.Helper()
	origLoad, origNew, origPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet, origNow := putObject, presignGetObject, now
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient = origLoad, origNew, origPre
		putObject, presignGetObject, now = origPut, origGet, origNow
	})

	c := &captured{}
	now = func() time.Time { return time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC) }
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		c.region = lo.Region
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint != nil {
			c.endpoint = *opts.BaseEndpoint
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(*s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		c.put = in
		b, _ := io.ReadAll(in.Body)
		c.body = string(b)
		return &s3.PutObjectOutput{}, putErr
	}
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		c.get = in
		if presignErr != nil {
			return nil, presignErr
		}
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/" + *in.Key + "?sig=1"}, nil
	}
	return c
}

func TestNewS3Publisher_RequiresBucket(t *testing.T) {
	_, err := NewS3Publisher(S3Config{})
	assert.ErrorIs(t, err, ErrNoBucket)

	p, err := NewS3Publisher(testConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultExpires, p.cfg.Expires)
}

func TestPublish_UploadsAndPresigns(t *testing.T) {
	c := stubAWS(t, nil, nil)
	p, err := NewS3Publisher(testConfig())
	require.NoError(t, err)

	url, err := p.Publish(context.Background(), "guests-2024-07-05.csv", "text/csv", []byte("a;b"))
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", c.region)
	assert.Equal(t, "http://127.0.0.1:9000", c.endpoint)
	require.NotNil(t, c.put)
	assert.Equal(t, "guestkeeper", *c.put.Bucket)
	assert.True(t, strings.HasPrefix(*c.put.Key, "exports/2024/07/05/"), *c.put.Key)
	assert.True(t, strings.HasSuffix(*c.put.Key, "/guests-2024-07-05.csv"), *c.put.Key)
	assert.Equal(t, "text/csv", *c.put.ContentType)
	assert.Equal(t, "a;b", c.body)
	assert.Equal(t, *c.put.Key, *c.get.Key)
	assert.Contains(t, url, *c.put.Key)
}

func TestPublish_Errors(t *testing.T) {
	t.Run("load config", func(t *testing.T) {
		stubAWS(t, nil, nil)
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("load-fail")
		}
		p, _ := NewS3Publisher(testConfig())
		_, err := p.Publish(context.Background(), "x.pdf", "application/pdf", nil)
		assert.EqualError(t, err, "load-fail")
	})

	t.Run("put", func(t *testing.T) {
		c := stubAWS(t, errors.New("denied"), nil)
		p, _ := NewS3Publisher(testConfig())
		_, err := p.Publish(context.Background(), "x.pdf", "application/pdf", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "denied")
		assert.Nil(t, c.get)
	})

	t.Run("presign", func(t *testing.T) {
		stubAWS(t, nil, errors.New("sign-fail"))
		p, _ := NewS3Publisher(testConfig())
		_, err := p.Publish(context.Background(), "x.pdf", "application/pdf", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sign-fail")
	})
}
