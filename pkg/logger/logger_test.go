package logger

import (
	"bytes"
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When it is initialized", func() {
			So(Init(), ShouldBeNil)
			defer func() { _ = Sync() }()

			Convey("Then Get should return a usable logger", func() {
				So(Get(), ShouldNotBeNil)
				So(func() { Get().Info(context.Background(), "test message", String("k", "v")) }, ShouldNotPanic)
			})
		})

		Convey("When initialized with a nil writer", func() {
			Convey("Then it should return an error", func() {
				So(InitWithWriter(nil), ShouldNotBeNil)
			})
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging with fields", func() {
			Get().Info(ctx, "rating stored", String("player", "Ana"), Int("score", 7))

			Convey("Then the fields and the caller source should be written", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "rating stored")
				So(out, ShouldContainSubstring, "player=Ana")
				So(out, ShouldContainSubstring, "score=7")
				So(out, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When the context carries a request id", func() {
			Get().Info(WithRequestID(ctx, "req-42"), "handled")

			Convey("Then the request id should be logged", func() {
				So(buf.String(), ShouldContainSubstring, "request_id=req-42")
				So(RequestID(WithRequestID(ctx, "req-42")), ShouldEqual, "req-42")
			})
		})

		Convey("When the level is raised to warn", func() {
			So(SetLevelString("warn"), ShouldBeNil)
			defer func() { _ = SetLevelString("info") }()
			Get().Info(ctx, "hidden")
			Get().Warn(ctx, "shown")

			Convey("Then info entries should be dropped", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden")
				So(buf.String(), ShouldContainSubstring, "shown")
			})
		})

		Convey("When using a named logger", func() {
			Named("ratings").Info(ctx, "named", String("k", "v"))

			Convey("Then attributes should be grouped under the name", func() {
				So(buf.String(), ShouldContainSubstring, "ratings.k=v")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(SetLevelString("debug"), ShouldBeNil)
		So(SetLevelString("WARNING"), ShouldBeNil)
		So(SetLevelString(" error "), ShouldBeNil)
		So(SetLevelString(""), ShouldBeNil)
		So(SetLevelString("verbose"), ShouldNotBeNil)
	})
}
