/*
 *    Copyright 2025 XeOps.ai
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package notification

import (
	"fmt"
	"strings"

	"lead-intake/domain/entities"
)

// Lead emails go out in French, the form audience is French speaking.

func notificationSubject(submission *entities.Submission) string {
	return "Nouvelle demande de scan - " + submission.ScanID
}

func notificationBody(submission *entities.Submission) string {
	return fmt.Sprintf(`
Nouvelle demande de scan de sécurité reçue!

=== INFORMATIONS CLIENT ===
Nom: %s %s
Email: %s
Téléphone: %s
Poste: %s

=== ENTREPRISE ===
Société: %s
Taille: %s
Secteur: %s

=== SCAN ===
ID: %s
Urgence: %s
Infrastructure: %s

=== DÉFIS ===
%s

=== CONSENTEMENTS ===
GDPR: %s
Marketing: %s

=== MÉTADONNÉES ===
IP: %s
Date: %s
User Agent: %s
`,
		submission.FirstName, submission.LastName,
		submission.Email,
		submission.Phone,
		submission.JobTitle,
		submission.Company,
		submission.CompanySize,
		submission.Industry,
		submission.ScanID,
		submission.Urgency,
		strings.Join(submission.Infrastructure, ", "),
		submission.Challenges,
		ouiNon(submission.GdprConsent),
		ouiNon(submission.MarketingConsent),
		submission.ServerMetadata.IPAddress,
		submission.ServerMetadata.Timestamp,
		submission.ServerMetadata.UserAgent)
}

func confirmationSubject(submission *entities.Submission) string {
	return "Confirmation de votre demande de scan - " + submission.ScanID
}

func confirmationBody(submission *entities.Submission) string {
	return fmt.Sprintf(`
Bonjour %s,

Votre demande de scan de sécurité a été reçue avec succès.

Détails:
- ID de scan: %s
- Entreprise: %s
- Urgence: %s

Vous recevrez votre rapport dans les délais indiqués.

Cordialement,
L'équipe XeOps.ai

---
contact@xeops.ai
https://xeops.ai
`,
		submission.FirstName,
		submission.ScanID,
		submission.Company,
		submission.Urgency)
}

func ouiNon(consent bool) string {
	if consent {
		return "Oui"
	}
	return "Non"
}
