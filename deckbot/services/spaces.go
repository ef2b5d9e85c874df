package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	imageCacheSize    = 2048
	warmupParallelism = 8
)

// SpacesService resolves card image references to public URLs on the
// Spaces bucket. Existence checks are cached so repeated deck renders
// do not re-issue HeadObject calls for the same card.
type SpacesService struct {
	client   *s3.Client
	bucket   string
	region   string
	cardRoot string
	seen     *lru.Cache
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, cardRoot string) *SpacesService {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		panic(fmt.Sprintf("Unable to load Spaces config: %v", err))
	}

	cache, _ := lru.New(imageCacheSize)

	return &SpacesService{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
		cardRoot: strings.TrimPrefix(cardRoot, "/"),
		seen:     cache,
	}
}

// ImageURL returns the public URL for a card image reference, or ""
// when the object does not exist so the caller falls back to the card
// name.
func (s *SpacesService) ImageURL(ctx context.Context, image string) string {
	if image == "" {
		return ""
	}
	key := s.objectKey(image)

	if exists, ok := s.seen.Get(key); ok {
		if exists.(bool) {
			return s.publicURL(key)
		}
		return ""
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	exists := err == nil
	s.seen.Add(key, exists)

	if !exists {
		return ""
	}
	return s.publicURL(key)
}

// WarmImageCache pre-checks a batch of image references with bounded
// concurrency so the first deck renders after startup hit the cache.
func (s *SpacesService) WarmImageCache(ctx context.Context, images []string) error {
	sem := semaphore.NewWeighted(warmupParallelism)
	g, ctx := errgroup.WithContext(ctx)

	for _, image := range images {
		if image == "" {
			continue
		}
		image := image
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)
			s.ImageURL(ctx, image)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Card image cache warmed",
		slog.String("type", "sys"),
		slog.Int("images", len(images)))
	return nil
}

func (s *SpacesService) objectKey(image string) string {
	if s.cardRoot == "" {
		return image
	}
	return s.cardRoot + "/" + image
}

func (s *SpacesService) publicURL(key string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key)
}
