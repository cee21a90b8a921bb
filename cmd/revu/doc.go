// Revu fetches a GitHub user's repositories, reviews their recent commits
// with Gemini, and writes the results as text and PDF reports.
//
// For each repository it shallow-clones a scratch copy, lists the most
// recent non-merge commits, sends each commit's diff to the model for a
// quality review, and aggregates every per-commit result into one report.
//
// Usage:
//
//	revu --github-username octocat              # review octocat's repos
//	revu -c 10 --no-pdf                         # 10 commits per repo, text only
//	revu --dry-run                              # show the plan, do nothing
//
// See https://github.com/avelis/revu for full documentation.
package main
