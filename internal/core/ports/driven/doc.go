// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FormDocumentAPI: Creates the form and inserts items (Google Forms)
//   - ContentStore: Publishes banner images (Google Drive)
//   - Mailer: Sends invitation and reminder email (Gmail)
//   - SummaryWriter: Writes the summary document (Google Docs)
//   - BannerRenderer: Draws section header banners
//   - RecipientSource: Loads the recipient list
//   - TemplateRenderer: Renders email bodies
//   - ReminderStore: Persists scheduled reminders
//   - ConfigStore: Application configuration
//   - Authenticator: Establishes usable Google credentials
//   - DecisionPrompt: Asks the operator before distribution
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
