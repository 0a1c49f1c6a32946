package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given a registered site", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)

		Convey("When requesting the root", func() {
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the dashboard page should be served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				body := w.Body.String()
				So(body, ShouldContainSubstring, "Scouting")
				So(body, ShouldContainSubstring, "Búsqueda")
				So(body, ShouldContainSubstring, "Filtros y datos")
				So(body, ShouldContainSubstring, "Comparación")
			})
		})

		Convey("When requesting the page by name", func() {
			req := httptest.NewRequest("GET", "/index.html", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the file server should redirect to the root", func() {
				So(w.Code, ShouldEqual, http.StatusMovedPermanently)
			})
		})

		Convey("When requesting an unknown asset", func() {
			req := httptest.NewRequest("GET", "/missing.js", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then 404 should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When posting to the root", func() {
			req := httptest.NewRequest("POST", "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the method should be refused", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestSiteHandlerWithNilMux(t *testing.T) {
	Convey("Given a nil mux", t, func() {
		Convey("Then registering should panic", func() {
			So(func() { Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
