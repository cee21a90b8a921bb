// Package report turns an ordered sequence of reviews into artifacts.
//
// The text report is the canonical projection: generation metadata, summary
// statistics averaged over numeric scores only, then one detailed block per
// review in run order. PDF output goes through a [Renderer] chain (the
// styled markdown/HTML/wkhtmltopdf path first, a direct document-model
// fallback second) so a missing wkhtmltopdf binary degrades instead of
// failing the run.
package report
