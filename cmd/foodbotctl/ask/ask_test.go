package askcmder

import (
	"bytes"
	"net"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/foodhubco/foodbot/server"
)

var _ = Describe("Ask Command", func() {
	// startServer runs a fallback-only chat server on an ephemeral port.
	startServer := func() (string, func()) {
		srv := server.New(server.DefaultConfig(), zap.NewNop())

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		go func() {
			_ = srv.RunWithListener(listener)
		}()

		addr := "http://" + listener.Addr().String()
		Eventually(func() error {
			resp, err := http.Get(addr + "/health")
			if err != nil {
				return err
			}
			resp.Body.Close()
			return nil
		}).Should(Succeed())

		cleanup := func() {
			srv.Shutdown()
		}
		return addr, cleanup
	}

	It("prints the reply with a provenance footer", func() {
		addr, cleanup := startServer()
		defer cleanup()

		out := &bytes.Buffer{}
		cmd := NewAskCmd()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{"--server", addr, "--plain", "hello"})

		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("FoodBot"))
		Expect(out.String()).To(ContainSubstring("source: fallback"))
	})

	It("surfaces a 400 for an empty message", func() {
		addr, cleanup := startServer()
		defer cleanup()

		out := &bytes.Buffer{}
		cmd := NewAskCmd()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{"--server", addr, "--plain", ""})

		err := cmd.Execute()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("400"))
	})

	It("fails cleanly when no server is listening", func() {
		out := &bytes.Buffer{}
		cmd := NewAskCmd()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{"--server", "http://127.0.0.1:1", "--plain", "hello"})

		Expect(cmd.Execute()).NotTo(Succeed())
	})
})
