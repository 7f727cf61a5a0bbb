package esbuild_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/bundle/internal/adapters/esbuild"
)

func TestBanner_UMD(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata"))

	text := esbuild.Banner("Browser bundle of nunjucks 3.2.4 (slim, only works with precompiled templates)", "nunjucks")
	g.Assert(t, "umd_banner", []byte(text+"\n/* bundle */\n"+esbuild.UMDFooter("nunjucks")+"\n"))
}

func TestBanner_NoText(t *testing.T) {
	assert.Equal(t, esbuild.UMDHeader("nunjucks"), esbuild.Banner("", "nunjucks"))
}

func TestBanner_EscapesCommentEnd(t *testing.T) {
	text := esbuild.Banner("evil */ text", "nunjucks")
	assert.Contains(t, text, "/*! evil * / text */")
}
