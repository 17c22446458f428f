package dirinfo_test

import (
	"context"
	"errors"

	"github.com/mtfelian/dirinfo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type ctxKey string

var _ = Describe("resolve callbacks", func() {
	const (
		key   ctxKey = "key"
		value        = "value"
	)
	var (
		ctx            context.Context
		before, after  int
		resolvers      map[string]dirinfo.Resolver
		errBeforeCheck = errors.New("before check failed")
	)

	BeforeEach(func() {
		ctx = context.Background()
		before, after = 0, 0

		s3, err := dirinfo.NewS3(dirinfo.S3Params{Endpoint: "localhost:9000", BucketName: "test-bucket"})
		Expect(err).NotTo(HaveOccurred())
		resolvers = map[string]dirinfo.Resolver{
			"local": dirinfo.NewLocal(),
			"s3":    s3,
		}

		dirinfo.SetBeforeResolveCB(func(ctx context.Context) (context.Context, error) {
			before++
			return context.WithValue(ctx, key, value), nil
		})
		dirinfo.SetAfterResolveCB(func(ctx context.Context) error {
			after++
			Expect(ctx.Value(key)).To(Equal(value))
			return nil
		})
		DeferCleanup(func() {
			dirinfo.SetBeforeResolveCB(nil)
			dirinfo.SetAfterResolveCB(nil)
		})
	})

	It("checks callbacks are invoked around every resolution", func() {
		for name, r := range resolvers {
			before, after = 0, 0
			d, err := dirinfo.New(ctx, r, "/a/b")
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(d.Depth()).To(Equal(2), name)
			Expect(before).To(Equal(3), name)
			Expect(after).To(Equal(3), name)
		}
	})

	It("checks before callback error stops resolution", func() {
		dirinfo.SetBeforeResolveCB(func(ctx context.Context) (context.Context, error) {
			return ctx, errBeforeCheck
		})
		for name, r := range resolvers {
			after = 0
			d, err := dirinfo.New(ctx, r, "/a/b")
			Expect(err).To(Equal(errBeforeCheck), name)
			Expect(d).To(BeNil())
			Expect(after).To(BeZero(), name)
		}
	})

	It("checks after callback error is returned when resolution succeeded", func() {
		errAfter := errors.New("after check failed")
		dirinfo.SetAfterResolveCB(func(context.Context) error { return errAfter })
		for name, r := range resolvers {
			_, err := r.Resolve(ctx, "/a")
			Expect(err).To(Equal(errAfter), name)

			By("dropping after callback error when resolution failed", func() {
				_, err := r.Resolve(ctx, "")
				Expect(err).To(MatchError(dirinfo.ErrInvalidArgument), name)
			})
		}
	})

	It("checks callbacks are accessible", func() {
		Expect(dirinfo.BeforeResolveCB()).NotTo(BeNil())
		Expect(dirinfo.AfterResolveCB()).NotTo(BeNil())
	})
})
