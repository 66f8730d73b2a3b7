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

package out

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"lead-intake/domain/entities"
	ports "lead-intake/domain/ports/out"
	"lead-intake/logging"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	recordTimestampFormat = "2006-01-02_15-04-05"
	crmDateFormat         = "2006-01-02"

	recordFileMode = 0o644
	dataDirMode    = 0o755
)

// crmHeader is the column layout the CRM importer was built against. Order matters.
var crmHeader = []string{
	"first_name", "last_name", "email", "company", "job_title", "phone",
	"company_size", "industry", "infrastructure", "urgency", "challenges",
	"gdpr_consent", "marketing_consent", "lead_source", "submission_date",
	"scan_id", "ip_address",
}

// LeadStorageFS persists accepted submissions on the local filesystem. The
// JSON record is the source of truth, the CSV is a daily export for the CRM
// and the audit log is an append-only JSON lines file.
type LeadStorageFS struct {
	fs       afero.Fs
	dataDir  string
	auditLog string
	archiver ports.Archiver
	logger   logging.Logger
	now      func() time.Time

	crmMu   sync.Mutex
	auditMu sync.Mutex
}

func NewLeadStorageFS(fs afero.Fs, dataDir, auditLog string, archiver ports.Archiver, logger logging.Logger) (*LeadStorageFS, error) {
	if err := fs.MkdirAll(dataDir, dataDirMode); err != nil {
		return nil, errors.Wrap(err, "failed to create data dir")
	}

	if err := fs.MkdirAll(filepath.Dir(auditLog), dataDirMode); err != nil {
		return nil, errors.Wrap(err, "failed to create audit log dir")
	}

	return &LeadStorageFS{
		fs:       fs,
		dataDir:  dataDir,
		auditLog: auditLog,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// SaveRecord writes the submission as a pretty printed JSON file and returns
// the generated filename. HTML escaping stays off, the sanitizer already
// escaped markup and double escaping would corrupt the record.
func (l *LeadStorageFS) SaveRecord(submission *entities.Submission) (string, error) {
	filename := fmt.Sprintf("scan_request_%s_%s.json", submission.ScanID, l.now().Format(recordTimestampFormat))

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(submission); err != nil {
		return "", errors.Wrap(err, "failed to encode submission")
	}

	if err := afero.WriteFile(l.fs, filepath.Join(l.dataDir, filename), buf.Bytes(), recordFileMode); err != nil {
		return "", errors.Wrap(err, "failed to write submission record")
	}

	if l.archiver != nil {
		if err := l.archiver.Archive(filename, buf.Bytes()); err != nil {
			l.logger.Warnw("Failed to archive submission record", "filename", filename, "error", err)
		}
	}

	return filename, nil
}

// AppendCRMRow adds the submission to the daily CSV export, writing the
// header first when the file is new.
func (l *LeadStorageFS) AppendCRMRow(submission *entities.Submission) error {
	l.crmMu.Lock()
	defer l.crmMu.Unlock()

	path := l.crmPath(l.now())

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return errors.Wrap(err, "failed to stat CRM export")
	}

	file, err := l.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, recordFileMode)
	if err != nil {
		return errors.Wrap(err, "failed to open CRM export")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if !exists {
		if err := writer.Write(crmHeader); err != nil {
			return errors.Wrap(err, "failed to write CRM header")
		}
	}

	if err := writer.Write(crmRow(submission)); err != nil {
		return errors.Wrap(err, "failed to write CRM row")
	}

	writer.Flush()

	return errors.Wrap(writer.Error(), "failed to flush CRM export")
}

// AppendAuditLine appends one JSON line to the audit log.
func (l *LeadStorageFS) AppendAuditLine(entry entities.AuditEntry) error {
	l.auditMu.Lock()
	defer l.auditMu.Unlock()

	line, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to encode audit entry")
	}

	file, err := l.fs.OpenFile(l.auditLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, recordFileMode)
	if err != nil {
		return errors.Wrap(err, "failed to open audit log")
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return errors.Wrap(err, "failed to append audit line")
	}

	return nil
}

// DailyScanIDs lists the scan ids captured on the given day, read back from
// the CRM export.
func (l *LeadStorageFS) DailyScanIDs(day time.Time) ([]string, error) {
	l.crmMu.Lock()
	defer l.crmMu.Unlock()

	path := l.crmPath(day)

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat CRM export")
	}
	if !exists {
		return []string{}, nil
	}

	file, err := l.fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CRM export")
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CRM export")
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	scanIDColumn := -1
	for i, column := range rows[0] {
		if column == "scan_id" {
			scanIDColumn = i
			break
		}
	}
	if scanIDColumn == -1 {
		return nil, errors.New("CRM export has no scan_id column")
	}

	scanIDs := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if scanIDColumn < len(row) {
			scanIDs = append(scanIDs, row[scanIDColumn])
		}
	}

	return scanIDs, nil
}

// Ready reports whether the data dir is writable, used by the readiness probe.
func (l *LeadStorageFS) Ready() error {
	probe := filepath.Join(l.dataDir, ".readiness")

	if err := afero.WriteFile(l.fs, probe, []byte(strconv.FormatInt(l.now().Unix(), 10)), recordFileMode); err != nil {
		return errors.Wrap(err, "data dir not writable")
	}

	return l.fs.Remove(probe)
}

func (l *LeadStorageFS) crmPath(day time.Time) string {
	return filepath.Join(l.dataDir, fmt.Sprintf("crm_import_%s.csv", day.Format(crmDateFormat)))
}

func crmRow(submission *entities.Submission) []string {
	return []string{
		submission.FirstName,
		submission.LastName,
		submission.Email,
		submission.Company,
		submission.JobTitle,
		submission.Phone,
		submission.CompanySize,
		submission.Industry,
		strings.Join(submission.Infrastructure, "; "),
		submission.Urgency,
		submission.Challenges,
		yesNo(submission.GdprConsent),
		yesNo(submission.MarketingConsent),
		entities.LeadSource,
		submission.SubmissionDate,
		submission.ScanID,
		submission.ServerMetadata.IPAddress,
	}
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
