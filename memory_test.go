package dirinfo_test

import (
	"context"

	"github.com/mtfelian/dirinfo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Memory resolver", func() {
	var (
		ctx context.Context
		mem *dirinfo.Memory
	)

	BeforeEach(func() {
		ctx = context.Background()
		mem = dirinfo.NewMemory("srv/../data/")
	})

	It("checks working directory is canonical", func() {
		Expect(mem.WorkDir()).To(Equal("/data"))
		Expect(dirinfo.NewMemory("").WorkDir()).To(Equal("/"))
	})

	It("checks resolution of relative and absolute names", func() {
		res, err := mem.Resolve(ctx, "x/y")
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(dirinfo.Resolution{FullName: "/data/x/y", Parent: "/data/x", HasParent: true}))

		res, err = mem.Resolve(ctx, "/")
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(dirinfo.Resolution{FullName: "/"}))

		res, err = mem.Resolve(ctx, "../../..")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.FullName).To(Equal("/"))
		Expect(res.HasParent).To(BeFalse())
	})

	It("checks failures are matched by canonical name", func() {
		mem.Fail("x/./y/", dirinfo.ErrAccessDenied)
		_, err := mem.Resolve(ctx, "/data/x/y")
		Expect(err).To(Equal(dirinfo.ErrAccessDenied))

		_, err = mem.Resolve(ctx, "/data/x")
		Expect(err).NotTo(HaveOccurred())
		Expect(mem.Calls()).To(BeEquivalentTo(2))
	})
})
